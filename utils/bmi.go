package utils

// BMI computes body mass index from the profile's height (cm) and
// weight (kg) and labels it with the WHO category. ok is false when the
// inputs are missing or outside a plausible human range, which happens
// for accounts that skipped setup.
func BMI(heightCm, weightKg float64) (value float64, category string, ok bool) {
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, "", false
	}

	m := heightCm / 100
	value = weightKg / (m * m)

	switch {
	case value < 18.5:
		category = "underweight"
	case value < 25:
		category = "normal"
	case value < 30:
		category = "overweight"
	default:
		category = "obese"
	}
	return value, category, true
}
