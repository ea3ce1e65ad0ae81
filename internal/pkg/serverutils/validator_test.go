package serverutils

import (
	"testing"
)

func TestValidateIndonesianPhone(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plus prefix", "+6281234567890", "+6281234567890", false},
		{"bare country code", "6281234567890", "+6281234567890", false},
		{"leading zero", "081234567890", "+6281234567890", false},
		{"surrounding whitespace", "  081234567890  ", "+6281234567890", false},
		{"shortest valid", "0811234567", "+62811234567", false},
		{"not mobile prefix", "0712345678", "", true},
		{"second digit zero", "0801234567", "", true},
		{"too short", "08123456", "", true},
		{"too long", "0812345678901234", "", true},
		{"letters", "08123abc456", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateIndonesianPhone(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ValidateIndonesianPhone(%q) should error, got %q", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateIndonesianPhone(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ValidateIndonesianPhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateSlug(t *testing.T) {
	valid := []string{"my-page", "page123", "a", "2024-launch"}
	for _, s := range valid {
		if err := ValidateSlug(s); err != nil {
			t.Errorf("ValidateSlug(%q) should pass, got: %v", s, err)
		}
	}

	invalid := []string{"", "My-Page", "page_one", "page one", "pagé", "page!"}
	for _, s := range invalid {
		if err := ValidateSlug(s); err == nil {
			t.Errorf("ValidateSlug(%q) should fail", s)
		}
	}
}

func TestValidateRequest(t *testing.T) {
	type signInBody struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}

	ok := signInBody{Email: "user@example.com", Password: "password123"}
	if err := ValidateRequest(&ok); err != nil {
		t.Errorf("valid body should pass, got: %v", err)
	}

	bad := signInBody{Email: "not-an-email", Password: "short"}
	err := ValidateRequest(&bad)
	if err != nil {
		appErr, ok := err.(*AppError)
		if !ok {
			t.Fatalf("want *AppError, got %T", err)
		}
		if appErr.Code != 400 {
			t.Errorf("validation failure code = %d, want 400", appErr.Code)
		}
	} else {
		t.Error("invalid body should fail validation")
	}
}
