package base64_test

import (
	"fmt"

	"github.com/ericlagergren/nibble/base64"
)

func ExampleEncodeToString() {
	s, err := base64.EncodeToString([]byte("Man"))
	if err != nil {
		panic(err)
	}
	fmt.Println(s)

	s, err = base64.EncodeToString([]byte{0xff})
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output:
	// TWFu
	// /w==
}

func ExampleDecodeString() {
	b, err := base64.DecodeString("TWFu")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s\n", b)

	_, err = base64.DecodeString("A===")
	fmt.Println(err)
	// Output:
	// Man
	// base64: input is corrupt
}

func ExampleDecodeStringNoCheck() {
	b, err := base64.DecodeStringNoCheck("A===")
	fmt.Println(len(b), err)

	_, err = base64.DecodeStringNoCheck("A")
	fmt.Println(err)
	// Output:
	// 1 <nil>
	// base64: input is corrupt
}

func ExampleValid() {
	fmt.Println(base64.Valid([]byte("TWE=")))
	fmt.Println(base64.Valid([]byte("TW=u")))
	// Output:
	// true
	// false
}
