// animal project defaults.go
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

package animal

// defaultGenotypes are the built-in breeds. The values follow the published
// feeding standards closely enough for general use; a genotype file can
// override any of them.
const defaultGenotypes = `
{
  genotypes: [
    {
      name: "Merino"
      animal: "sheep"
      srw: 50
      fleeceRatio: 0.09
      maxFleeceDiam: 21
      srwScalars: [1.2, 1.4]
      mortRate: [0, 0.00014, 0.0002]
      mortAge: [0, 90, 365]
      mortIntensity: 0.1
      mortCondConst: 0.6
      mortWtDiff: 0.15
      growthC: [0, 0.0157, 0.27, 0.4, 1.1]
      intakeC: [0, 0.04, 1.7, 0.5, 25, 0.01, 25, 22, 28, 1.4, 0.5, 0.05, 0.15, 0.005, 0.002, 0.5, 1.0, 0.02, 60, 3, 1.5, 1.4]
      intakeLactC: [0.416, 0.416, 0.5, 0.5]
      grazeC: [0, 0.8, 0.17, 1.7, 0.00135, 0.6, 0.0008, 1.0, 60, 0.12, 0.2, 10.5, 0.15, 0.35, 1.0, 0.3, 0.2, 0, 0, 0, 11.5]
      efficC: [0, 0.5, 0.02, 0.85, 0.7, 0.4, 0.02, 0.6, 0.133, 0.95, 0.84, 0.8, 0.7, 0.035, 0.33, 0.12, 0.043]
      maintC: [0, 0.09, 0.26, 0.00008, 0.84, 0.23, 0.0025, 0.8, 0.0002, 0.3, 0.0152, 0.00046, 0.000147, 0.003375, 0.00069, 0.15, 0.0026, 5]
      dgProtC: [0, 0.3, 0.25, 0.1, 0.007, 0.005, 0.35, 0.1, 0]
      protC: [0, 0.3, 0.9, 3.0, 0.1, 0.92, 1.0, 0.6, 0.25, 0.8]
      pregC: [0, 147, 2.2, 1.77, 0.33, 2.2, 2.42, 1.16, 4.11, 343.5, 0.0164, 0.134, 6.22, 0.747]
      pregScale: [0, 0.15, 0.1, 0.07]
      birthWtScale: [0, 0.081, 0.069, 0.058]
      peakLactC: [0, 0.416, 0.53, 0.6]
      lactC: [0, 4, 22, 0.6, 0.6, 0.94, 4.7, 1.17, 0, 0, 0, 0, 0.486, 0.365, 0.103, 0.0475, 0.7, 0.01, 0.1, 1.6, 4, 0.004, 0.006, 3, 0.6, 1.03]
      woolC: [0, 24, 0.004, 0.7, 0.04, 0.25, 0.04, 1.35, 0.016, 0.84, 1300, 6e7, 0.025, 0.35, 0.5]
      chillC: [0, 0.09, 3.0, 0.3, 0.4, 0.7, 0.1, 0.35, 0.13, 1.3, 0.15, 39, 1.0, 2.0, 0.1, 10, 0.05]
      gainC: [0, 0.6, 0.7, 0.8, 6, 0.4, 0.9, 0.97, 6.7, -20.3, -2.0, 13.8, 0.21, -0.14, -0.008, 0.115, 1.0, 1.0, 1.09]
      phosC: [0, 0.8, 0.9, 0.00005, 0.0025, 0.00002, 0, 0.00095, 0.0002, 0.001, 0.00002, 0.0012, 0.00002, 0.0016, 0.0045, 0.5]
      sulfC: [0, 0.07, 0.07, 0.22, 0.0025]
      methC: [0, 0.184, 2.42, 0.66, 1.87, 0.295, 0.018, 0]
      ashAlkC: [0, 0.3, 0.1, 0.3]
      ovulationPeriod: 17
      puberty: [210, 210]
      dayLengthConst: [0, 0.18, 0.3, 0.3]
      conceiveSigs: [[0, 0], [0.85, 9], [1.15, 8], [1.45, 8]]
      fertWtDiff: 2
      toxaemiaSigs: [0.3, 20]
      dystokiaSigs: [2.0, 4.0]
      exposureConsts: [-8.5, 1.5, 0.0075, 0.9]
      selfWeanPropn: 0.05
    }
    {
      name: "Angus"
      animal: "cattle"
      srw: 550
      fleeceRatio: 0
      maxFleeceDiam: 0
      srwScalars: [1.2, 1.4]
      mortRate: [0, 0.000611, 0.0000553]
      mortAge: [0, 90, 365]
      mortIntensity: 0.1
      mortCondConst: 0.6
      mortWtDiff: 0.15
      growthC: [0, 0.0115, 0.27, 0.4, 1.1]
      intakeC: [0, 0.025, 1.7, 0.22, 60, 0.02, 25, 22, 81, 1.7, 0.6, 0.05, 0.15, 0.005, 0.002, 0.5, 1.0, 0.01, 20, 3, 1.5, 0.7]
      intakeLactC: [0.564, 0.564, 0.7, 0.7]
      grazeC: [0, 0.8, 0.17, 1.7, 0.0010, 0.6, 0.0006, 1.0, 60, 0.12, 0.2, 10.5, 0.15, 0.35, 1.0, 0.3, 0.2, 0, 0, 0, 11.5]
      efficC: [0, 0.5, 0.02, 0.85, 0.7, 0.4, 0.02, 0.6, 0.133, 0.95, 0.84, 0.8, 0.7, 0.035, 0.33, 0.12, 0.043]
      maintC: [0, 0.09, 0.31, 0.00008, 0.84, 0.23, 0.0025, 0.8, 0.0002, 0.3, 0.0152, 0.00046, 0.0129, 0.0338, 0.00069, 0.15, 0.0026, 0.5]
      dgProtC: [0, 0.3, 0.25, 0.1, 0.007, 0.005, 0.35, 0.1, 0]
      protC: [0, 0.3, 0.9, 3.0, 0.1, 0.92, 1.0, 0.6, 0.25, 0.8]
      pregC: [0, 285, 2.2, 1.77, 0.33, 1.8, 2.42, 1.16, 4.11, 343.5, 0.0164, 0.134, 6.22, 0.747]
      pregScale: [0, 0.15, 0.1, 0.07]
      birthWtScale: [0, 0.07, 0.06, 0]
      peakLactC: [0, 0.375, 0.375, 0]
      lactC: [0, 4, 30, 0.6, 0.6, 0.94, 3.1, 1.17, 0, 0, 0, 0, 0.42, 0.58, 0.036, 0.032, 0.7, 0.01, 0.1, 1.6, 4, 0.004, 0.006, 3, 0.6, 1.03]
      woolC: [0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
      chillC: [0, 0.09, 3.0, 0.7, 0.4, 0.7, 0.1, 0.35, 0.13, 2.5, 0.15, 39, 1.0, 2.0, 0.1, 10, 0.05]
      gainC: [0, 0.6, 0.7, 0.8, 6, 0.4, 0.9, 0.97, 6.7, -20.3, -2.0, 13.8, 0.21, -0.14, -0.008, 0.115, 1.0, 1.0, 1.09]
      phosC: [0, 0.8, 0.9, 0.00005, 0.0025, 0.00002, 0, 0.00095, 0.0002, 0.001, 0.00002, 0.0012, 0.00002, 0.0016, 0.0045, 0.5]
      sulfC: [0, 0.07, 0.07, 0.22, 0.0025]
      methC: [0, 0.184, 2.42, 0.66, 1.87, 0.295, 0.018, 0]
      ashAlkC: [0, 0.3, 0.1, 0.3]
      ovulationPeriod: 21
      puberty: [365, 300]
      dayLengthConst: [0, 0, 0, 0]
      conceiveSigs: [[0, 0], [0.95, 12], [10, 12], [0, 0]]
      fertWtDiff: 0
      toxaemiaSigs: [0.3, 20]
      dystokiaSigs: [2.0, 4.0]
      exposureConsts: [-8.5, 1.5, 0.0075, 0.9]
      selfWeanPropn: 0.05
    }
  ]
}`
