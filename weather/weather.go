// weather project weather.go
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

package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/APSIMInitiative/ApsimX-sub000/grazMath"
)

// Day is one day of weather at a site
type Day struct {
	Doy  int     // day of year 1..366
	Lat  float64 // latitude, degrees, south negative
	MinT float64 // oC
	MaxT float64
	Rain float64 // mm
	Wind float64 // m/s
}

func (d Day) DayOfYear() int { return d.Doy }
func (d Day) Latitude() float64 { return d.Lat }
func (d Day) MinTemp() float64 { return d.MinT }
func (d Day) MaxTemp() float64 { return d.MaxT }
func (d Day) MeanTemp() float64 { return 0.5 * (d.MinT + d.MaxT) }
func (d Day) Rainfall() float64 { return d.Rain }
func (d Day) WindSpeed() float64 { return d.Wind }

// DayLength is the hours the sun is above sunAngle degrees (use -6 for civil twilight)
func (d Day) DayLength(sunAngle float64) float64 {
	return DayLength(d.Lat, d.Doy, sunAngle)
}

// DayLength computes hours of daylight from the solar declination.
func DayLength(latitude float64, doy int, sunAngle float64) float64 {
	dec := 23.45 * math.Sin(2.0*math.Pi/365.25*(float64(doy)-82.25)) * grazMath.Deg2Rad
	lat := latitude * grazMath.Deg2Rad
	alt := sunAngle * grazMath.Deg2Rad

	slsd := math.Sin(lat) * math.Sin(dec)
	clcd := math.Cos(lat) * math.Cos(dec)

	altMin := math.Asin(math.Max(-1.0, math.Min(1.0, slsd-clcd)))
	altMax := math.Asin(math.Max(-1.0, math.Min(1.0, slsd+clcd)))

	switch {
	case alt >= altMax:
		return 0.0
	case alt <= altMin:
		return 24.0
	}
	cosHra := (math.Sin(alt) - slsd) / clcd
	cosHra = math.Max(-1.0, math.Min(1.0, cosHra))
	return math.Acos(cosHra) / grazMath.Deg2Rad * 2.0 / 15.0
}

// Series is a run of daily weather. Days beyond the end of the
// series repeat the last day with the day of year advanced.
type Series struct {
	Latitude float64
	Days     []Day
}

// On returns the weather for simulation day i (0-based) starting at startDoy
func (s Series) On(i int, startDoy int) Day {
	doy := (startDoy-1+i)%365 + 1
	if len(s.Days) == 0 {
		return Day{Doy: doy, Lat: s.Latitude, MinT: 5, MaxT: 18}
	}
	var d Day
	if i < len(s.Days) {
		d = s.Days[i]
	} else {
		d = s.Days[len(s.Days)-1]
	}
	d.Doy = doy
	d.Lat = s.Latitude
	return d
}

// Scale returns a copy with temperatures shifted by dT and rainfall scaled by rainScale
func (s Series) Scale(dT, rainScale float64) Series {
	r := Series{Latitude: s.Latitude, Days: make([]Day, len(s.Days))}
	for i, d := range s.Days {
		d.MinT += dT
		d.MaxT += dT
		d.Rain = math.Max(0, d.Rain*rainScale)
		r.Days[i] = d
	}
	return r
}

// FromParam reads the weather: key of a simulation file.
//
//	weather: {
//	  latitude: -35
//	  daily: [ "minT, maxT, rain, wind", ... ]
//	}
//
// A constant: string may replace daily: for a fixed climate.
func FromParam(param map[string]interface{}, nDays int) (Series, error) {
	var s Series
	w, ok := param["weather"].(map[string]interface{})
	if !ok {
		return s, fmt.Errorf("'weather:' key not found")
	}
	s.Latitude, _ = w["latitude"].(float64)

	if c, ok := w["constant"].(string); ok {
		d, err := parseDay(c)
		if err != nil {
			return s, err
		}
		for i := 0; i < nDays; i++ {
			s.Days = append(s.Days, d)
		}
		return s, nil
	}

	array, ok := w["daily"].([]interface{})
	if !ok {
		return s, fmt.Errorf("weather needs a 'daily:' or 'constant:' key")
	}
	for i := range array {
		str, ok := array[i].(string)
		if !ok {
			return s, fmt.Errorf("weather day %d is not a string", i+1)
		}
		d, err := parseDay(str)
		if err != nil {
			return s, fmt.Errorf("weather day %d: %w", i+1, err)
		}
		s.Days = append(s.Days, d)
	}
	return s, nil
}

func parseDay(line string) (Day, error) {
	var d Day
	f := strings.Split(line, ",")
	if len(f) < 4 {
		return d, fmt.Errorf("expected minT, maxT, rain, wind in %q", line)
	}
	v := make([]float64, 4)
	for k := 0; k < 4; k++ {
		x, err := strconv.ParseFloat(strings.TrimSpace(f[k]), 64)
		if err != nil {
			return d, err
		}
		v[k] = x
	}
	d.MinT, d.MaxT, d.Rain, d.Wind = v[0], v[1], v[2], v[3]
	if d.MinT > d.MaxT {
		return d, fmt.Errorf("minimum temperature above maximum in %q", line)
	}
	return d, nil
}
