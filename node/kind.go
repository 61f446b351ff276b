package node

type ShapeEnum int

const (
	ShapeUnknown ShapeEnum = iota
	ShapePrimitive
	ShapeInterface
	ShapeCollection // slice or array
	ShapeMap
	ShapeStruct
	ShapePointer

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)
