package node_test

import (
	"fmt"
	"reflect"

	"value-synth/node"
)

type parent struct{ Child *child }
type child struct{ Parent *parent }

func ExamplePathGuard() {
	var g node.PathGuard

	fmt.Println("enter parent:", g.Enter(reflect.TypeFor[parent]()))
	fmt.Println("enter child:", g.Enter(reflect.TypeFor[*child]()))
	fmt.Println("enter parent again:", g.Enter(reflect.TypeFor[*parent]()))

	g.Leave(reflect.TypeFor[child]())
	fmt.Println("child active:", g.Active(reflect.TypeFor[child]()))

	g.Leave(reflect.TypeFor[parent]())
	fmt.Println("parent active:", g.Active(reflect.TypeFor[parent]()))

	// Output:
	// enter parent: true
	// enter child: true
	// enter parent again: false
	// child active: false
	// parent active: false
}
