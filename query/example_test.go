package query_test

import (
	"fmt"
	"log"

	"github.com/creachadair/pjson"
	"github.com/creachadair/pjson/query"
)

func Example() {
	s := pjson.NewStream()
	s.Consume(`{"a": {"b": "c"}, "d": {"e": {"f": "g"`)

	v, err := query.Eval(s.Query(), query.Path("d", "e", "f"))
	if err != nil {
		log.Fatalf("Eval: %v", err)
	}
	fmt.Println(v.JSON())
	// Output:
	// "g"
}

func Example_object() {
	s := pjson.NewStream()
	s.Consume(`{"plaintiff": "Inigo Montoya", "complaint": {"action": "killed", "target": "my father"}}`)

	v, err := query.Eval(s.Query(), query.Object{
		"name": query.Path("plaintiff"),
		"act":  query.Path("complaint", "action"),
		"who":  query.Alt{query.Path("complaint", "victim"), query.Path("complaint", "target")},
	})
	if err != nil {
		log.Fatalf("Eval: %v", err)
	}
	obj := v.(pjson.Object)
	fmt.Printf("Hello, my name is %s. You %s %s.\n", obj["name"], obj["act"], obj["who"])
	// Output:
	// Hello, my name is Inigo Montoya. You killed my father.
}
