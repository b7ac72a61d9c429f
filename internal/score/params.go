package score

// Params is the validated, defaulted parameter mapping handed to a compute
// function. It only ever contains declared parameters that passed their
// constraint, so compute funcs read values without re-checking them.
type Params map[string]any

// Has reports whether the parameter was supplied (or defaulted).
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Str returns the string value of an enum or string parameter.
func (p Params) Str(name string) string {
	s, _ := p[name].(string)
	return s
}

// Float returns the value of a number parameter.
func (p Params) Float(name string) float64 {
	f, _ := p[name].(float64)
	return f
}

// Int returns the value of a number parameter truncated to an int.
func (p Params) Int(name string) int {
	return int(p.Float(name))
}

// Bool returns the value of a boolean parameter.
func (p Params) Bool(name string) bool {
	b, _ := p[name].(bool)
	return b
}

// Yes reports whether a yes/no enum parameter was answered "yes".
func (p Params) Yes(name string) bool {
	return p.Str(name) == "yes"
}
