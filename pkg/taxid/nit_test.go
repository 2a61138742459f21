package taxid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/pkg/taxid"
)

func TestValidateNIT_ConDigitoDeVerificacion(t *testing.T) {
	// 900123456 → DV 8 (módulo 11)
	assert.NoError(t, taxid.ValidateNIT("900123456-8"))
	assert.NoError(t, taxid.ValidateNIT("900.123.456-8"))
	assert.Error(t, taxid.ValidateNIT("900123456-7"), "DV incorrecto debe rechazarse")
}

func TestValidateNIT_SinDigitoDeVerificacion(t *testing.T) {
	assert.NoError(t, taxid.ValidateNIT("900123456"), "9 dígitos sin DV se acepta")
	assert.Error(t, taxid.ValidateNIT("12345"), "menos de 9 dígitos se rechaza")
	assert.Error(t, taxid.ValidateNIT("12345678901"), "más de 10 dígitos se rechaza")
}

func TestComputeVerificationDigit(t *testing.T) {
	dv, err := taxid.ComputeVerificationDigit("900123456")
	require.NoError(t, err)
	assert.Equal(t, byte('8'), dv)

	dv, err = taxid.ComputeVerificationDigit("800654321")
	require.NoError(t, err)
	assert.Equal(t, byte('8'), dv)

	_, err = taxid.ComputeVerificationDigit("123")
	assert.Error(t, err)
}
