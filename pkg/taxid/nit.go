// Package taxid valida números de identificación tributaria (NIT, Colombia).
package taxid

import (
	"fmt"
	"unicode"
)

// pesos para el cálculo del dígito de verificación NIT (Orden Administrativa 4 de 1989).
// Se aplican a los 9 primeros dígitos del NIT, de izquierda a derecha.
var nitWeights = [9]int{41, 37, 29, 23, 19, 17, 13, 7, 3}

// ValidateNIT valida un NIT con o sin puntos/guiones: "123456789-1",
// "123.456.789-1" o "123456789". Con 9 dígitos se acepta sin dígito de
// verificación; con 10, el último debe ser el dígito de verificación correcto
// según el algoritmo módulo 11.
func ValidateNIT(taxID string) error {
	digits := extractDigits(taxID)
	switch len(digits) {
	case 9:
		return nil
	case 10:
		expected := verificationDigit(digits[:9])
		if digits[9] != expected {
			return fmt.Errorf("taxid: dígito de verificación inválido: esperado %c, recibido %c", expected, digits[9])
		}
		return nil
	}
	return fmt.Errorf("taxid: NIT debe tener 9 o 10 dígitos, se encontraron %d", len(digits))
}

// ComputeVerificationDigit calcula el dígito de verificación para los 9
// primeros dígitos del NIT.
func ComputeVerificationDigit(taxID string) (byte, error) {
	digits := extractDigits(taxID)
	if len(digits) < 9 {
		return 0, fmt.Errorf("taxid: se requieren al menos 9 dígitos, se encontraron %d", len(digits))
	}
	return verificationDigit(digits[:9]), nil
}

func verificationDigit(base []byte) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * nitWeights[i]
	}
	remainder := sum % 11
	if remainder == 0 || remainder == 1 {
		return byte('0' + remainder)
	}
	return byte('0' + (11 - remainder))
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
