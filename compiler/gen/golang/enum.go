package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/countrygen/compiler/gen"
)

var enumDocs = map[string]string{
	gen.EnumContinent:   "continents",
	gen.EnumRegion:      "regions",
	gen.EnumSubregion:   "subregions",
	gen.EnumWorldRegion: "world regions",
}

// genEnum generates the package of one enum: an int type, one constant per
// member and a String method.
func genEnum(h *helper, e *gen.Enum) *jen.File {
	var (
		typ = e.Name
		f   = h.newFile(h.enumPkg(e), enumPkgName(e))
	)
	f.PackageComment(fmt.Sprintf("Package %s defines the %s of the countries in package %s.", enumPkgName(e), enumDocs[e.Name], PkgName))

	f.Commentf("%s is one of the %s of the dataset.", typ, enumDocs[e.Name])
	f.Type().Id(typ).Int()

	f.Const().DefsFunc(func(grp *jen.Group) {
		for i, m := range e.Members {
			if i == 0 {
				grp.Id(m.Ident).Id(typ).Op("=").Iota()
				continue
			}
			grp.Id(m.Ident)
		}
	})

	f.Var().Id("names").Op("=").Index(jen.Op("...")).String().ValuesFunc(func(grp *jen.Group) {
		for _, m := range e.Members {
			grp.Lit(m.Ident)
		}
	})

	f.Comment("String returns the name of the constant.")
	f.Func().Params(jen.Id("v").Id(typ)).Id("String").Params().String().Block(
		jen.If(jen.Id("v").Op("<").Lit(0).Op("||").Int().Parens(jen.Id("v")).Op(">=").Len(jen.Id("names"))).Block(
			jen.Return(jen.Lit(typ+"(").Op("+").Qual("strconv", "Itoa").Call(jen.Int().Parens(jen.Id("v"))).Op("+").Lit(")")),
		),
		jen.Return(jen.Id("names").Index(jen.Id("v"))),
	)
	return f
}

func enumExports(e *gen.Enum) []string {
	return append([]string{e.Name}, e.Idents()...)
}
