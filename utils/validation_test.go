package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("jean.dupont@exemple.fr"))
	assert.True(t, ValidateEmail("contact+devis@agence-web.com"))
	assert.False(t, ValidateEmail("pas-un-email"))
	assert.False(t, ValidateEmail("jean@"))
	assert.False(t, ValidateEmail("@exemple.fr"))
}

func TestValidateFrenchPhone(t *testing.T) {
	assert.True(t, ValidateFrenchPhone("06 12 34 56 78"))
	assert.True(t, ValidateFrenchPhone("0612345678"))
	assert.True(t, ValidateFrenchPhone("+33 6 12 34 56 78"))
	assert.True(t, ValidateFrenchPhone("01.42.68.53.00"))
	assert.False(t, ValidateFrenchPhone("12345"))
	assert.False(t, ValidateFrenchPhone("00 12 34 56 78"))
	assert.False(t, ValidateFrenchPhone("06 12 34 56"))
}
