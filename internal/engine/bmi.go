package engine

// BMI category bands, closed-open except the top.
const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
)

// ClassifyBMI computes weight/height² rounded to 1 decimal and maps it to a
// category band.
func ClassifyBMI(heightCm, weightKg float64) BMI {
	heightM := heightCm / 100
	value := round1(weightKg / (heightM * heightM))

	category := BMINormal
	switch {
	case value < 18.5:
		category = BMIUnderweight
	case value >= 30:
		category = BMIObese
	case value >= 25:
		category = BMIOverweight
	}
	return BMI{Value: value, Category: category}
}
