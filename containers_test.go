package cliargs_test

import (
	"github.com/mikeschinkel/go-cliargs"
)

type primitives struct {
	IntField    int
	FloatField  float32
	DoubleField float64
	LongField   int64
	StringField string
	Untagged    string
}

func primitivesContainer() *cliargs.Descriptor[primitives] {
	return cliargs.NewContainer("primitives",
		cliargs.Int("IntField", func(p *primitives) *int { return &p.IntField },
			cliargs.Value{Key: "--intField", ErrorDescription: "Error in intField"},
			cliargs.NotRequired{},
		),
		cliargs.Float32("FloatField", func(p *primitives) *float32 { return &p.FloatField },
			cliargs.Value{Key: "--floatField", ErrorDescription: "Error in floatField"},
			cliargs.NotRequired{},
		),
		cliargs.Float64("DoubleField", func(p *primitives) *float64 { return &p.DoubleField },
			cliargs.Value{Key: "--doubleField", ErrorDescription: "Error in doubleField"},
		),
		cliargs.Int64("LongField", func(p *primitives) *int64 { return &p.LongField },
			cliargs.Value{Key: "--longField", ErrorDescription: "Error in longField"},
		),
		cliargs.String("StringField", func(p *primitives) *string { return &p.StringField },
			cliargs.Value{Key: "--stringField", ErrorDescription: "Error in stringField"},
		),
		cliargs.String("Untagged", func(p *primitives) *string { return &p.Untagged }),
	)
}

type pair struct {
	IntField    int
	StringField string
}

func pairContainer() *cliargs.Descriptor[pair] {
	return cliargs.NewContainer("pair",
		cliargs.Int("IntField", func(p *pair) *int { return &p.IntField },
			cliargs.Value{Key: "--intField", ErrorDescription: "Error in intField"},
		),
		cliargs.String("StringField", func(p *pair) *string { return &p.StringField },
			cliargs.Value{Key: "--stringField", ErrorDescription: "Error in stringField"},
		),
	)
}

type flags struct {
	BoolValue1    bool
	BoolValue2    bool
	MissingValue1 bool
	MissingValue2 bool
}

func flagsContainer() *cliargs.Descriptor[flags] {
	return cliargs.NewContainer("flags",
		cliargs.Bool("BoolValue1", func(f *flags) *bool { return &f.BoolValue1 },
			cliargs.Flag{Key: "--boolValue1"},
		),
		cliargs.Bool("BoolValue2", func(f *flags) *bool { return &f.BoolValue2 },
			cliargs.Flag{Key: "--boolValue2"},
		),
		cliargs.Bool("MissingValue1", func(f *flags) *bool { return &f.MissingValue1 },
			cliargs.Flag{Key: "--missing1", Default: true},
		),
		cliargs.Bool("MissingValue2", func(f *flags) *bool { return &f.MissingValue2 },
			cliargs.Flag{Key: "--missing2"},
		),
	)
}

type testEnum int

const (
	enumX testEnum = iota + 1
	enumY
	enumZ
)

var testEnumMembers = []cliargs.EnumMember[testEnum]{
	{Name: "X", Value: enumX},
	{Name: "Y", Value: enumY},
	{Name: "Z", Value: enumZ},
}

type enums struct {
	TestEnum testEnum
}

func enumsContainer(mapping ...cliargs.MapPair) *cliargs.Descriptor[enums] {
	if mapping == nil {
		mapping = []cliargs.MapPair{
			{Token: "-X", Member: "X"},
			{Token: "-Y", Member: "Y"},
			{Token: "-Z", Member: "Z"},
		}
	}
	return cliargs.NewContainer("enums",
		cliargs.Enum("TestEnum", func(e *enums) *testEnum { return &e.TestEnum }, testEnumMembers,
			cliargs.Enumerated{
				Key:              "--testEnum",
				ErrorDescription: "Error in testEnum",
				Mapping:          mapping,
			},
		),
	)
}

type person struct {
	Name       string
	SecondName string
	Age        int
	Verbose    bool
}

func personContainer() *cliargs.Descriptor[person] {
	return cliargs.NewContainer("person",
		cliargs.String("Name", func(p *person) *string { return &p.Name },
			cliargs.Value{Key: "--name", ErrorDescription: "Argument --name must be string"},
		),
		cliargs.String("SecondName", func(p *person) *string { return &p.SecondName },
			cliargs.Value{Key: "--second-name", ErrorDescription: "Argument --second-name must be string"},
			cliargs.NotRequired{},
		),
		cliargs.Int("Age", func(p *person) *int { return &p.Age },
			cliargs.Value{Key: "--age", ErrorDescription: "Argument --age must be int"},
		),
		cliargs.Bool("Verbose", func(p *person) *bool { return &p.Verbose },
			cliargs.Flag{Key: "--verbose"},
		),
	)
}
