package golang

import (
	"strings"
	"time"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/countrygen/compiler/gen"
)

// rootExports lists the names package iso3166 is expected to declare.
func rootExports(g *gen.Graph) []string {
	exports := []string{"Country", "Subdivision", "All", "FromAlpha2", "FromAlpha3", "FindSubdivisionByCode"}
	for _, name := range g.FunctionNames() {
		exports = append(exports, funcName(name))
	}
	return exports
}

func genRoot(h *helper) *jen.File {
	f := h.newFile(h.pkg, PkgName)
	f.PackageComment("Package " + PkgName + " provides the country and subdivision data of ISO 3166-1 and")
	f.PackageComment("ISO 3166-2, together with currency, telephone routing and address formatting")
	f.PackageComment("information.")
	f.ImportName("time", "time")
	for _, e := range h.graph.Enums.Modules() {
		f.ImportName(h.enumPkg(e), enumPkgName(e))
	}
	genTypes(h, f)
	genLookups(h, f)
	for _, fn := range h.graph.Countries {
		genCountry(h, f, fn)
	}
	for _, fn := range h.graph.Subdivisions {
		genSubdivisions(f, fn)
	}
	return f
}

func genTypes(h *helper, f *jen.File) {
	enum := func(e *gen.Enum) jen.Code { return jen.Qual(h.enumPkg(e), e.Name) }
	enums := h.graph.Enums
	f.Comment("Country is one country of ISO 3166-1. AddressFormat is a Liquid template and")
	f.Comment("empty when the format of the country is unknown.")
	f.Type().Id("Country").Struct(
		jen.Id("AddressFormat").String(),
		jen.Id("Alpha2").String(),
		jen.Id("Alpha3").String(),
		jen.Id("Continent").Add(enum(enums.Continent)),
		jen.Id("CountryCode").String(),
		jen.Id("CurrencyCode").String(),
		jen.Id("Emoji").String(),
		jen.Id("GEC").String(),
		jen.Id("InternationalPrefix").String(),
		jen.Id("IOC").String(),
		jen.Id("LanguagesOfficial").Index().String(),
		jen.Id("LanguagesSpoken").Index().String(),
		jen.Id("LocalNames").Index().String(),
		jen.Id("Name").String(),
		jen.Id("NANPPrefix").String(),
		jen.Id("NationalDestinationCodeLengths").Index().Int(),
		jen.Id("NationalNumberLengths").Index().Int(),
		jen.Id("NationalPrefix").String(),
		jen.Id("Nationality").String(),
		jen.Id("Number").String(),
		jen.Id("PostalCode").Bool(),
		jen.Id("PostalCodeFormat").String(),
		jen.Id("Region").Add(enum(enums.Region)),
		jen.Id("StartOfWeek").Qual("time", "Weekday"),
		jen.Id("Subdivisions").Index().Id("Subdivision"),
		jen.Id("Subregion").Add(enum(enums.Subregion)),
		jen.Id("UNLocode").String(),
		jen.Id("UnofficialNames").Index().String(),
		jen.Id("WorldRegion").Add(enum(enums.WorldRegion)),
	)

	f.Comment("Subdivision is one subdivision of ISO 3166-2. Subdivisions without a name in")
	f.Comment("the source data are not included.")
	f.Type().Id("Subdivision").Struct(
		jen.Id("Name").String(),
		jen.Id("Code").String(),
		jen.Id("UnofficialNames").Index().String(),
	)
}

func genLookups(h *helper, f *jen.File) {
	f.Comment("All returns all countries, ordered by name.")
	f.Func().Id("All").Params().Index().Id("Country").Block(
		jen.Return(jen.Index().Id("Country").ValuesFunc(func(grp *jen.Group) {
			for _, name := range h.graph.CountryNames() {
				grp.Line().Id(funcName(name)).Call()
			}
			grp.Line()
		})),
	)
	for _, by := range []string{"Alpha2", "Alpha3"} {
		f.Commentf("From%s returns the first country of All whose %s equals code.", by, by)
		f.Func().Id("From"+by).Params(jen.Id("code").String()).Params(jen.Id("Country"), jen.Bool()).Block(
			jen.For(jen.List(jen.Id("_"), jen.Id("c")).Op(":=").Range().Id("All").Call()).Block(
				jen.If(jen.Id("c").Dot(by).Op("==").Id("code")).Block(
					jen.Return(jen.Id("c"), jen.True()),
				),
			),
			jen.Return(jen.Id("Country").Values(), jen.False()),
		)
	}
	f.Comment("FindSubdivisionByCode returns the first subdivision of c with the given code.")
	f.Func().Id("FindSubdivisionByCode").Params(jen.Id("c").Id("Country"), jen.Id("code").String()).Params(jen.Id("Subdivision"), jen.Bool()).Block(
		jen.For(jen.List(jen.Id("_"), jen.Id("s")).Op(":=").Range().Id("c").Dot("Subdivisions")).Block(
			jen.If(jen.Id("s").Dot("Code").Op("==").Id("code")).Block(
				jen.Return(jen.Id("s"), jen.True()),
			),
		),
		jen.Return(jen.Id("Subdivision").Values(), jen.False()),
	)
}

func genCountry(h *helper, f *jen.File, fn *gen.Function) {
	var (
		r     = fn.Country
		enums = h.graph.Enums
		name  = funcName(fn.Name)
	)
	subdivisions := jen.Index().Id("Subdivision").Values()
	if r.Subdivisions != "" {
		subdivisions = jen.Id(funcName(r.Subdivisions)).Call()
	}
	f.Commentf("%s returns %s.", name, docText(fn.Doc))
	f.Func().Id(name).Params().Id("Country").Block(
		jen.Return(jen.Id("Country").Values(jen.Dict{
			jen.Id("AddressFormat"):                  jen.Lit(r.AddressFormat),
			jen.Id("Alpha2"):                         jen.Lit(r.Alpha2),
			jen.Id("Alpha3"):                         jen.Lit(r.Alpha3),
			jen.Id("Continent"):                      jen.Qual(h.enumPkg(enums.Continent), r.Continent),
			jen.Id("CountryCode"):                    jen.Lit(r.CountryCode),
			jen.Id("CurrencyCode"):                   jen.Lit(r.CurrencyCode),
			jen.Id("Emoji"):                          jen.Lit(r.Emoji),
			jen.Id("GEC"):                            jen.Lit(r.GEC),
			jen.Id("InternationalPrefix"):            jen.Lit(r.InternationalPrefix),
			jen.Id("IOC"):                            jen.Lit(r.IOC),
			jen.Id("LanguagesOfficial"):              stringList(r.LanguagesOfficial),
			jen.Id("LanguagesSpoken"):                stringList(r.LanguagesSpoken),
			jen.Id("LocalNames"):                     stringList(r.LocalNames),
			jen.Id("Name"):                           jen.Lit(r.Name),
			jen.Id("NANPPrefix"):                     jen.Lit(r.NANPPrefix),
			jen.Id("NationalDestinationCodeLengths"): intList(r.NationalDestinationCodeLengths),
			jen.Id("NationalNumberLengths"):          intList(r.NationalNumberLengths),
			jen.Id("NationalPrefix"):                 jen.Lit(r.NationalPrefix),
			jen.Id("Nationality"):                    jen.Lit(r.Nationality),
			jen.Id("Number"):                         jen.Lit(r.Number),
			jen.Id("PostalCode"):                     jen.Lit(r.PostalCode),
			jen.Id("PostalCodeFormat"):               jen.Lit(r.PostalCodeFormat),
			jen.Id("Region"):                         jen.Qual(h.enumPkg(enums.Region), r.Region),
			jen.Id("StartOfWeek"):                    jen.Qual("time", weekday(r.StartOfWeek)),
			jen.Id("Subdivisions"):                   subdivisions,
			jen.Id("Subregion"):                      jen.Qual(h.enumPkg(enums.Subregion), r.Subregion),
			jen.Id("UNLocode"):                       jen.Lit(r.UNLocode),
			jen.Id("UnofficialNames"):                stringList(r.UnofficialNames),
			jen.Id("WorldRegion"):                    jen.Qual(h.enumPkg(enums.WorldRegion), r.WorldRegion),
		})),
	)
}

func genSubdivisions(f *jen.File, fn *gen.Function) {
	name := funcName(fn.Name)
	f.Commentf("%s returns the %s", name, lowerFirst(docText(fn.Doc)))
	f.Func().Id(name).Params().Index().Id("Subdivision").Block(
		jen.Return(jen.Index().Id("Subdivision").ValuesFunc(func(grp *jen.Group) {
			for _, s := range fn.Subdivisions {
				grp.Values(jen.Dict{
					jen.Id("Name"):            jen.Lit(s.Name),
					jen.Id("Code"):            jen.Lit(s.Code),
					jen.Id("UnofficialNames"): stringList(s.UnofficialNames),
				})
			}
		})),
	)
}

func stringList(values []string) *jen.Statement {
	return jen.Index().String().ValuesFunc(func(grp *jen.Group) {
		for _, v := range values {
			grp.Lit(v)
		}
	})
}

func intList(values []int) *jen.Statement {
	return jen.Index().Int().ValuesFunc(func(grp *jen.Group) {
		for _, v := range values {
			grp.Lit(v)
		}
	})
}

// weekday returns the time.Weekday constant of a weekday abbreviation.
func weekday(abbrev string) string {
	return time.Weekday(gen.WeekdayIndex(abbrev)).String()
}

// docText folds free text onto one comment line.
func docText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
