package rdf

import (
	"fmt"
)

func ExampleSerialize() {
	doc := IRI{Value: "https://alice.example/profile/card"}
	me := IRI{Value: doc.Value + "#me"}
	store := NewStore()
	_ = store.Add(Statement{S: me, P: IRI{Value: "http://xmlns.com/foaf/0.1/name"}, O: NewLiteral("Alice"), G: doc})
	_ = store.Add(Statement{S: me, P: IRI{Value: "http://xmlns.com/foaf/0.1/knows"}, O: IRI{Value: "https://bob.example/profile/card#me"}, G: doc})

	out, err := Serialize(doc, store, doc.Value, MediaTypeTurtle, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(out)

	// Output:
	// @prefix : <#>.
	// @prefix foaf: <http://xmlns.com/foaf/0.1/>.
	// @prefix card: <https://bob.example/profile/card#>.
	//
	// :me
	//     foaf:name "Alice";
	//     foaf:knows card:me .
}

func ExampleSerialize_minimalPrefixes() {
	doc := IRI{Value: "https://alice.example/profile/card"}
	store := NewStore()
	_ = store.Add(Statement{
		S: IRI{Value: doc.Value + "#me"},
		P: IRI{Value: "http://xmlns.com/foaf/0.1/knows"},
		O: IRI{Value: "https://bob.example/profile/card#me"},
		G: doc,
	})

	out, _ := Serialize(doc, store, doc.Value, MediaTypeTurtle, nil, OptFlags("m"))
	fmt.Print(out)

	// Output:
	// @prefix : <#>.
	// @prefix foaf: <http://xmlns.com/foaf/0.1/>.
	//
	// :me foaf:knows <https://bob.example/profile/card#me>.
}

func ExampleDoubleLexical() {
	for _, lexical := range []string{"0.123", "123", "123e-2"} {
		fmt.Println(DoubleLexical(lexical))
	}
	// Output:
	// 0.123e0
	// 123.0e0
	// 123e-2
}
