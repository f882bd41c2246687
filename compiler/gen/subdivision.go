package gen

import (
	"strings"

	"github.com/syssam/countrygen/compiler/load"
)

// BuildSubdivisions builds the subdivision function of c, named after its
// country function. It returns nil when c has no subdivisions.
//
// Subdivisions without a name are left out of the list; their codes are
// returned as dropped so the caller can report them.
func BuildSubdivisions(c *load.Country, countryFunc string) (fn *Function, dropped []string, err error) {
	if !c.HasSubdivisions() {
		return nil, nil, nil
	}
	records := make([]SubdivisionRecord, 0, len(c.Subdivisions))
	for _, s := range c.Subdivisions {
		code := strings.TrimSpace(s.Code)
		if code == "" {
			return nil, nil, NewDatasetIntegrityError(c.Alpha2, "subdivisions", "subdivision without code")
		}
		if strings.TrimSpace(s.Name) == "" {
			dropped = append(dropped, code)
			continue
		}
		records = append(records, SubdivisionRecord{
			Name:            s.Name,
			Code:            code,
			UnofficialNames: nonNil(s.UnofficialNames),
		})
	}
	return &Function{
		Name:         SubdivisionFuncName(countryFunc),
		Doc:          "Subdivisions of " + c.Name + ".",
		Returns:      ReturnSubdivisions,
		Subdivisions: records,
	}, dropped, nil
}
