package domain

// Schools is the fixed roster of participating schools, in display order.
var Schools = []string{
	"EM Anísio Teixeira",
	"EE Milton Santos",
	"CE Paulo Freire",
}

// ClassesBySchool maps each roster school to its class list, in display order.
var ClassesBySchool = map[string][]string{
	"EM Anísio Teixeira": {"8º Ano A", "8º Ano B", "9º Ano A"},
	"EE Milton Santos":   {"9º Ano A", "9º Ano B"},
	"CE Paulo Freire":    {"1º EM A", "1º EM B", "2º EM A"},
}

// ValidStudentInfo checks the identification form against the roster.
func ValidStudentInfo(info StudentInfo) error {
	if info.Name == "" || info.School == "" || info.ClassName == "" {
		return ErrMissingStudentInfo
	}
	classes, ok := ClassesBySchool[info.School]
	if !ok {
		return ErrUnknownSchool
	}
	for _, c := range classes {
		if c == info.ClassName {
			return nil
		}
	}
	return ErrUnknownClass
}
