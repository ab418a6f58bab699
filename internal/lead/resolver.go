package lead

// NotFound is returned by FindRow when no data row matches either identity
// channel.
const NotFound = -1

// FindRow scans data rows top to bottom and returns the index of the first
// row matching the incoming identity. A supplied non-empty phone is matched
// first, across all rows, before the user-id channel is considered at all: a
// row that would match by user id never shadows a later phone match. Only
// when the phone pass finds nothing (or no usable phone was supplied) does a
// second pass match by string equality on the user-id cell — that fallback is
// what lets a row created from a user id alone be found again once the caller
// starts sending a phone. Duplicate identities resolve to the earliest row,
// deterministically.
func FindRow(rows [][]string, phone, tgUserID string, phoneCol, tgCol int) int {
	if phone != "" {
		for i, row := range rows {
			if phoneCol < len(row) && NormalizePhone(row[phoneCol]) == phone {
				return i
			}
		}
	}
	if tgUserID != "" {
		for i, row := range rows {
			if tgCol < len(row) && row[tgCol] == tgUserID {
				return i
			}
		}
	}
	return NotFound
}
