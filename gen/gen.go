package main

import (
	"bytes"
	"go/format"
	"os"
	"text/template"
)

// Every arity up to maxDenseArity is supported, above it only sparseArities.
// go/types rejects unions of more than 100 terms.
const maxDenseArity = 64

var sparseArities = []int{128, 256, 512, 1024, 2048, 4096}

var storageTmpl = template.Must(template.New("storage").Parse(`// Code generated by go-c10/gen. DO NOT EDIT.

package guts

// Storage is satisfied by the Go array types that may back an Array: [N]T
// (or a named type with that underlying type) for every N in [0, {{.Dense}}] and
// for N in {{"{"}}{{range $i, $n := .Sparse}}{{if $i}}, {{end}}{{$n}}{{end}}{{"}"}}.
type Storage[T any] interface {
{{range $i, $n := .Arities}}{{if $i}} |
{{end}}	~[{{$n}}]T{{end}}
}
`))

func arities() []int {
	res := make([]int, 0, maxDenseArity+1+len(sparseArities))
	for n := 0; n <= maxDenseArity; n++ {
		res = append(res, n)
	}
	return append(res, sparseArities...)
}

func writeStorage(path string) error {
	var buf bytes.Buffer
	err := storageTmpl.Execute(&buf, struct {
		Dense   int
		Sparse  []int
		Arities []int
	}{maxDenseArity, sparseArities, arities()})
	if err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return err
	}
	return os.WriteFile(path, src, 0o644)
}

func main() {
	if err := writeStorage("../guts/storage_gen.go"); err != nil {
		panic(err)
	}
}
