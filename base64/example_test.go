package base64_test

import (
	"errors"
	"fmt"

	"github.com/thesimj/jBase64/base64"
)

func ExampleEncode() {
	s, err := base64.Encode([]byte{0xfb, 0xff}, base64.Standard)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)

	s, err = base64.Encode([]byte{0xfb, 0xff}, base64.URLSafe)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)

	_, err = base64.Encode([]byte{}, base64.Standard)
	fmt.Println(err)
	// Output:
	// +/8=
	// -_8=
	// base64: input is empty
}

func ExampleDecodeString() {
	for _, s := range []string{
		"YW55IGNhcm5hbCBwbGVhc3U=",
		"YW55IGNhcm5hbCBwbGVhc3U",
		"YW55IGNhcm5hbCBwbGVhcw=x",
	} {
		b, err := base64.DecodeString(s, base64.Standard, true)
		if errors.Is(err, base64.ErrValidation) {
			fmt.Println("invalid")
			continue
		}
		fmt.Printf("%s\n", b)
	}
	// Output:
	// any carnal pleasu
	// any carnal pleasu
	// invalid
}

func ExampleValidate() {
	fmt.Println(base64.Validate("-_8=", base64.URLSafe))
	fmt.Println(base64.Validate("-_8=", base64.Standard))
	// Output:
	// true
	// false
}
