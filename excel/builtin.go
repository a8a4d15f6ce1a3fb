package excel

// builtInDates holds the date and time codes among Excel's built-in
// number formats (ECMA-376 §18.8.30).  IDs 27–36 and 50–58 are
// locale-specific in Excel; the codes here are the neutral Western forms
// Excel falls back to when a file does not override them.
var builtInDates = map[int]string{
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "hh:mm",
	21: "hh:mm:ss",
	22: "m/d/yy hh:mm",

	27: "MM-DD-YYYY",
	28: "D-MMM-YY",
	29: "D-MMM-YY",
	30: "M/D/YY",
	31: "YYYY-M-D",
	32: "H:MM",
	33: "H:MM:SS",
	34: "H:MM AM/PM",
	35: "H:MM:SS AM/PM",
	36: "MM-DD-YYYY",

	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mm:ss.0",

	50: "MM-DD-YYYY",
	51: "D-MMM-YY",
	52: "H:MM AM/PM",
	53: "H:MM:SS AM/PM",
	54: "D-MMM-YY",
	55: "H:MM AM/PM",
	56: "H:MM:SS AM/PM",
	57: "MM-DD-YYYY",
	58: "D-MMM-YY",
}

// BuiltIn returns the format code of a built-in date or time numFmtId.
func BuiltIn(id int) (string, bool) {
	code, ok := builtInDates[id]
	return code, ok
}

// IsDateFormat reports whether a numFmtId, or for custom IDs (≥ 164) its
// format code, describes a date or time.
//
// Custom codes are scanned for the date characters d, m, y, h and s in
// either case, skipping double-quoted text and bracketed sections.  An 'e'
// counts as the Japanese era token unless it follows a digit placeholder,
// where it is a scientific exponent.
func IsDateFormat(id int, code string) bool {
	if _, ok := builtInDates[id]; ok {
		return true
	}
	if id < 164 {
		return false
	}

	var (
		quoted, bracketed bool
		prev              rune
	)
	for _, ch := range code {
		switch {
		case quoted:
			quoted = ch != '"'
			continue
		case bracketed:
			bracketed = ch != ']'
			continue
		case ch == '"':
			quoted = true
			continue
		case ch == '[':
			bracketed = true
			continue
		}
		switch ch {
		case 'd', 'D', 'm', 'M', 'y', 'Y', 'h', 'H', 's', 'S':
			return true
		case 'e', 'E':
			if prev != '0' && prev != '#' && prev != '?' && prev != '.' {
				return true
			}
		}
		prev = ch
	}
	return false
}
