package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidation("nama", "Nama wajib diisi")
	if err.Error() != "Nama wajib diisi" {
		t.Errorf("Error() = %q", err.Error())
	}

	multi := &ValidationError{Fields: []FieldError{
		{Field: "nama", Message: "Nama wajib diisi"},
		{Field: "jumlah", Message: "Jumlah harus lebih dari 0"},
	}}
	if multi.Error() != "Nama wajib diisi; Jumlah harus lebih dari 0" {
		t.Errorf("Error() = %q", multi.Error())
	}

	empty := &ValidationError{}
	if empty.Error() != "data tidak valid" {
		t.Errorf("Error() = %q", empty.Error())
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("simpan kamar: %w", NewNotFound("Kamar tidak ditemukan"))

	var notFound *NotFoundError
	if !errors.As(wrapped, &notFound) {
		t.Fatalf("errors.As failed on wrapped NotFoundError")
	}
	if notFound.Message != "Kamar tidak ditemukan" {
		t.Errorf("message = %q", notFound.Message)
	}

	var validation *ValidationError
	if errors.As(wrapped, &validation) {
		t.Errorf("NotFoundError matched as ValidationError")
	}
}

func TestNewBusinessRuleFormats(t *testing.T) {
	err := NewBusinessRule("Aset tidak dapat dihapus karena sedang dipinjam (%d peminjaman aktif)", 3)
	want := "Aset tidak dapat dihapus karena sedang dipinjam (3 peminjaman aktif)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
