package main

import (
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	"github.com/poiesic/phonemescape/core"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// If we're in the core subpackage, cd up to project root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/poiesic/phonemescape/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.ID]())
	g.AddDefinedType(reflect.TypeFor[core.Category]())
	g.AddDefinedType(reflect.TypeFor[core.Height]())
	g.AddDefinedType(reflect.TypeFor[core.Backness]())
	g.AddDefinedType(reflect.TypeFor[core.Roundedness]())
	g.AddDefinedType(reflect.TypeFor[core.Manner]())
	g.AddDefinedType(reflect.TypeFor[core.Place]())
	g.AddDefinedType(reflect.TypeFor[core.Voicing]())

	err = g.AddStruct(reflect.TypeFor[core.Coordinate](),
		structops.WithField(),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	// Symbol, Category, Coordinate, six features, Description
	err = g.AddStruct(reflect.TypeFor[core.Phoneme](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/records_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}
