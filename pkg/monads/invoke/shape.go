package invoke

// Shape is the calling convention selected for a (callable, arguments) pair.
type Shape uint8

const (
	NotInvocable Shape = iota
	MethodDirect
	MethodGet
	MethodDeref
	FieldDirect
	FieldGet
	FieldDeref
	PlainCall
)

var shapeNames = [...]string{
	NotInvocable: "not-invocable",
	MethodDirect: "method-direct",
	MethodGet:    "method-get",
	MethodDeref:  "method-deref",
	FieldDirect:  "field-direct",
	FieldGet:     "field-get",
	FieldDeref:   "field-deref",
	PlainCall:    "plain-call",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "shape(?)"
}

// IsMethod reports the member function shapes.
func (s Shape) IsMethod() bool {
	return s >= MethodDirect && s <= MethodDeref
}

// IsField reports the data member shapes.
func (s Shape) IsField() bool {
	return s >= FieldDirect && s <= FieldDeref
}
