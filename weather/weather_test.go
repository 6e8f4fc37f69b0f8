// weather project weather_test.go
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
	"testing"

	hjson "github.com/hjson/hjson-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayLength(t *testing.T) {
	// equator is close to 12 hours all year
	assert.InDelta(t, 12.0, DayLength(0, 80, 0), 0.1)

	// southern hemisphere: long days in December, short in June
	summer := DayLength(-35, 355, 0)
	winter := DayLength(-35, 172, 0)
	assert.Greater(t, summer, 14.0)
	assert.Less(t, winter, 10.0)

	// twilight lengthens the day
	assert.Greater(t, DayLength(-35, 172, -6), winter)

	// polar night and midnight sun
	assert.Equal(t, 0.0, DayLength(-80, 172, 0))
	assert.Equal(t, 24.0, DayLength(-80, 355, 0))
}

func TestFromParamDaily(t *testing.T) {
	text := `{
  weather: {
    latitude: -35.5
    daily: [
      "2, 14, 0, 3"
      "4, 16, 12.5, 2"
    ]
  }
}`
	var param map[string]interface{}
	require.NoError(t, hjson.Unmarshal([]byte(text), &param))

	s, err := FromParam(param, 10)
	require.NoError(t, err)
	require.Len(t, s.Days, 2)

	d := s.On(1, 365)
	assert.Equal(t, 1, d.DayOfYear())
	assert.Equal(t, -35.5, d.Latitude())
	assert.Equal(t, 12.5, d.Rainfall())
	assert.Equal(t, 10.0, d.MeanTemp())

	// beyond the series the last day repeats
	assert.Equal(t, 16.0, s.On(5, 1).MaxTemp())
	assert.Equal(t, 6, s.On(5, 1).DayOfYear())
}

func TestFromParamConstant(t *testing.T) {
	param := map[string]interface{}{
		"weather": map[string]interface{}{"latitude": -30.0, "constant": "5, 20, 1, 2"},
	}
	s, err := FromParam(param, 3)
	require.NoError(t, err)
	assert.Len(t, s.Days, 3)

	scaled := s.Scale(1.5, 2)
	assert.Equal(t, 21.5, scaled.Days[0].MaxT)
	assert.Equal(t, 2.0, scaled.Days[0].Rain)
	assert.Equal(t, 20.0, s.Days[0].MaxT)
}

func TestFromParamErrors(t *testing.T) {
	_, err := FromParam(map[string]interface{}{}, 1)
	assert.Error(t, err)

	bad := map[string]interface{}{
		"weather": map[string]interface{}{"daily": []interface{}{"20, 5, 0, 1"}},
	}
	_, err = FromParam(bad, 1)
	assert.Error(t, err)
}
