package model

import "testing"

func TestIsAllowedMeasure(t *testing.T) {
	allowed := []string{
		"Violent crime rate",
		"Unemployment",
		"Children in poverty",
		"Diabetic screening",
		"Mammography screening",
		"Preventable hospital stays",
		"Uninsured",
		"Sexually transmitted infections",
		"Physical inactivity",
		"Adult obesity",
		"Premature Death",
		"Daily fine particulate matter",
	}
	for _, m := range allowed {
		if !IsAllowedMeasure(m) {
			t.Errorf("IsAllowedMeasure(%q) = false, want true", m)
		}
	}

	rejected := []string{
		"",
		"adult obesity",   // case matters
		"Premature death", // dataset capitalizes Death
		"Adult obesity ",  // no trimming
		"Coffee consumption",
	}
	for _, m := range rejected {
		if IsAllowedMeasure(m) {
			t.Errorf("IsAllowedMeasure(%q) = true, want false", m)
		}
	}
}

func TestValidZip(t *testing.T) {
	valid := []string{"02138", "00000", "99999"}
	for _, z := range valid {
		if !ValidZip(z) {
			t.Errorf("ValidZip(%q) = false, want true", z)
		}
	}

	invalid := []string{"", "2138", "021380", "0213a", "02 38", "02138\n", "-2138"}
	for _, z := range invalid {
		if ValidZip(z) {
			t.Errorf("ValidZip(%q) = true, want false", z)
		}
	}
}
