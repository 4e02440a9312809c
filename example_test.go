package smaz_test

import (
	"errors"
	"fmt"

	"github.com/dargueta/smaz"
)

func ExampleCodec_Compress() {
	codec := smaz.New()
	input := []byte("Hello World")

	output := make([]byte, smaz.CompressBound(len(input)))
	n, err := codec.Compress(input, output)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d -> %d bytes: %v\n", len(input), n, output[:n])
	// Output: 11 -> 10 bytes: [248 72 172 21 94 248 87 41 21 23]
}

func ExampleCodec_DecompressString() {
	codec := smaz.New()
	compressed := codec.CompressString("http://www.example.com/index.html")

	text, err := codec.DecompressString(compressed, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(compressed), text)

	_, err = codec.DecompressString(compressed, 8)
	fmt.Println(errors.Is(err, smaz.ErrBufferTooSmall))
	// Output:
	// 18 http://www.example.com/index.html
	// true
}

func ExampleNewWithTerms() {
	codec, err := smaz.NewWithTerms([]string{"GET ", "POST ", "/api/", "HTTP/1.1"})
	if err != nil {
		panic(err)
	}
	fmt.Println(codec.CompressString("GET /api/users HTTP/1.1"))
	// Output: [0 2 10 117 115 101 114 115 32 3]
}
