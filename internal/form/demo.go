package form

import _ "embed"

//go:embed assets/demo.yaml
var demoForm []byte

// Demo returns the built-in demo form: a menu, a customer panel with a group
// box, and a three-page tab control.
func Demo() *Form {
	f, err := Parse(demoForm)
	if err != nil {
		panic("form: embedded demo is invalid: " + err.Error())
	}
	return f
}
