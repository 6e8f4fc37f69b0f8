// initIndexParams
/*
Copyright 2021 Bruce Golden and Matt Spangler

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package ecoIndex

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	hjson "github.com/hjson/hjson-go"

	"github.com/APSIMInitiative/ApsimX-sub000/grazType"
	"github.com/APSIMInitiative/ApsimX-sub000/logger"
)

// Sale endpoints
const (
	Weaning   = "weaning"   // weaners are sold as they appear
	Finishing = "finishing" // groups are sold on reaching a target weight
	EndOfRun  = "endOfRun"  // everything is valued on the last day
)

// ClassSexMinWtMaxWt is one row of the live weight price table
type ClassSexMinWtMaxWt struct {
	Class      string  // age class, as in grazType.AgeText
	Sex        string  // female or male
	MinWt      float64 // If the weight of the animals is >=
	MaxWt      float64 // and the weight of the animals is <
	PricePerKg float64 // $/kg live weight
}

// GridValue is a carcass premium for animals at or above a body condition
type GridValue struct {
	MinCondition float64
	Premium      float64 // $/kg carcass
}

type Params struct {
	SaleEndpoint    string
	DiscountRate    float64
	PriceTable      []ClassSexMinWtMaxWt
	DSECost         [12]float64 // $/DSE/month
	SupplementPrice map[string]float64
	WoolPrice       float64 // $/kg greasy

	// Finishing only
	TargetWeight      map[string]float64 // by sex
	DressingPropn     float64
	CarcassPricePerKg float64
	Grid              []GridValue
}

// InitIndexParams reads the economic index hjson file
func InitIndexParams(indexParam string) (*Params, error) {
	byteValue, err := os.ReadFile(indexParam)
	if err != nil {
		if logger.Verbose() {
			fmt.Println("Failed to open " + indexParam)
			fmt.Println(err)
		}
		return nil, fmt.Errorf("failed to open index parameter file %s: %w", indexParam, err)
	}

	var paramIndex map[string]interface{}
	if er := hjson.Unmarshal(byteValue, &paramIndex); er != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", indexParam, er)
	}
	return ParseIndexParams(paramIndex)
}

// ParseIndexParams builds the index parameters from a decoded hjson map
func ParseIndexParams(paramIndex map[string]interface{}) (*Params, error) {
	p := &Params{SupplementPrice: make(map[string]float64), TargetWeight: make(map[string]float64)}

	var err error
	if p.SaleEndpoint, err = whatSaleEndpoint(paramIndex); err != nil {
		return nil, err
	}
	p.DiscountRate = number(paramIndex["discountRate"])
	p.WoolPrice = number(paramIndex["woolPricePerKg"])
	if err := p.readPricePerKg(paramIndex); err != nil {
		return nil, err
	}
	if err := p.loadDSECostPerMonth(paramIndex); err != nil {
		return nil, err
	}
	if prices, ok := paramIndex["supplementPricePerKg"].(map[string]interface{}); ok {
		for name, v := range prices {
			p.SupplementPrice[strings.ToLower(name)] = number(v)
		}
	}

	if p.SaleEndpoint == Finishing {
		if err := p.initGrid(paramIndex); err != nil {
			return nil, err
		}
	}

	if logger.Verbose() {
		fmt.Println("Type of economic index:", p.SaleEndpoint, " Discount rate:", p.DiscountRate)
	}
	return p, nil
}

// hjson leaves numbers as float64 but the index files often quote them
func number(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f
	}
	return 0.0
}

func whatSaleEndpoint(paramIndex map[string]interface{}) (string, error) {
	indexType, _ := paramIndex["saleEndpoint"].(string)
	switch indexType {
	case Weaning, Finishing, EndOfRun:
		return indexType, nil
	case "":
		return EndOfRun, nil
	}
	return "", fmt.Errorf("unknown saleEndpoint '%s'", indexType)
}

// Read the table of live weight prices: "class, sex, min, max, $/kg"
func (p *Params) readPricePerKg(paramIndex map[string]interface{}) error {
	carray, ok := paramIndex["classSexPricePerKg"].([]interface{})
	if !ok {
		return fmt.Errorf("'classSexPricePerKg:' key not found in economic index hjson")
	}

	for i := range carray {
		s, _ := carray[i].(string)
		c := strings.Split(s, ",")
		if len(c) != 5 {
			return fmt.Errorf("classSexPricePerKg row %d: want 5 fields, got '%s'", i+1, s)
		}
		var row ClassSexMinWtMaxWt
		row.Class = strings.TrimSpace(c[0])
		if ageClass(row.Class) < 0 {
			return fmt.Errorf("classSexPricePerKg row %d: unknown class '%s'", i+1, row.Class)
		}
		row.Sex = strings.ToLower(strings.TrimSpace(c[1]))
		row.MinWt = number(c[2])
		row.MaxWt = number(c[3])
		row.PricePerKg = number(c[4])
		p.PriceTable = append(p.PriceTable, row)
	}
	return nil
}

func ageClass(name string) grazType.AgeType {
	for i, t := range grazType.AgeText {
		if strings.EqualFold(t, name) {
			return grazType.AgeType(i)
		}
	}
	return -1
}

// Read in the grazing cost per DSE for each month
func (p *Params) loadDSECostPerMonth(paramIndex map[string]interface{}) error {
	carray, ok := paramIndex["dseCost"].([]interface{})
	if !ok {
		return nil
	}
	if len(carray) != 12 {
		return fmt.Errorf("'dseCost' needs 12 monthly values, got %d", len(carray))
	}
	for i := range carray {
		p.DSECost[i] = number(carray[i])
	}
	return nil
}

// Finishing sales need target weights and a carcass grid
func (p *Params) initGrid(paramIndex map[string]interface{}) error {
	tw, ok := paramIndex["targetWeight"].(map[string]interface{})
	if !ok {
		return fmt.Errorf("'targetWeight' key not found in economic index hjson")
	}
	for sex, v := range tw {
		p.TargetWeight[strings.ToLower(sex)] = number(v)
	}
	p.DressingPropn = number(paramIndex["dressingPropn"])
	p.CarcassPricePerKg = number(paramIndex["carcassPricePerKg"])

	carray, _ := paramIndex["gridPremiums"].([]interface{})
	for i := range carray {
		s, _ := carray[i].(string)
		c := strings.Split(s, ",")
		if len(c) != 2 {
			return fmt.Errorf("gridPremiums row %d: want 2 fields, got '%s'", i+1, s)
		}
		p.Grid = append(p.Grid, GridValue{MinCondition: number(c[0]), Premium: number(c[1])})
	}
	return nil
}
