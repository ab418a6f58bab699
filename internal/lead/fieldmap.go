package lead

// Canonical record field names. Once a field's column exists in the sheet its
// position never moves; new fields are appended, never inserted.
const (
	FieldPhoneNumber = "phone_number"
	FieldTimestamp   = "timestamp"
	FieldBrand       = "brand"
	FieldModel       = "model"
	FieldYear        = "year"
	FieldCity        = "city"
	FieldBudget      = "budget"
	FieldManager     = "manager"
	FieldClientName  = "client_name"
	FieldTgUserID    = "tg_user_id"
	FieldTgUsername  = "tg_username"
	FieldTag         = "tag"
)

// Field binds a canonical field name to the ordered list of payload aliases
// that may carry its value. The first alias present in a payload wins.
type Field struct {
	Name    string
	Aliases []string
}

// FieldMap is the static alias configuration, iterated in declaration order.
type FieldMap []Field

// DefaultFieldMap returns the alias configuration for the lead sheet. The
// transliterated aliases (marka, gorod, god, soglasie) come from legacy form
// integrations and must stay accepted.
func DefaultFieldMap() FieldMap {
	return FieldMap{
		{Name: FieldPhoneNumber, Aliases: []string{"phone", "phone_number", "mobile"}},
		{Name: FieldTimestamp, Aliases: []string{"timestamp"}},
		{Name: FieldBrand, Aliases: []string{"brand", "marka"}},
		{Name: FieldModel, Aliases: []string{"model"}},
		{Name: FieldYear, Aliases: []string{"year", "god"}},
		{Name: FieldCity, Aliases: []string{"city", "gorod", "location"}},
		{Name: FieldBudget, Aliases: []string{"budget", "price"}},
		{Name: FieldManager, Aliases: []string{"manager", "manager_consent", "consent", "soglasie"}},
		{Name: FieldClientName, Aliases: []string{"client_name", "name"}},
		{Name: FieldTgUserID, Aliases: []string{"tg_user_id", "user_id"}},
		{Name: FieldTgUsername, Aliases: []string{"tg_username", "username"}},
		{Name: FieldTag, Aliases: []string{"tag"}},
	}
}

// Aliases returns the alias list for a canonical field, nil when the field is
// not configured.
func (m FieldMap) Aliases(name string) []string {
	for _, f := range m {
		if f.Name == name {
			return f.Aliases
		}
	}
	return nil
}
