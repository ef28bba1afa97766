package validate

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@b.com", true},
		{"a@b", false},
		{"a.com", false},
		{"a@@b.com", false},
		{"first.last@sub.example.org", true},
		{"a@b.c.d", true},
		{"a@.com", false},
		{"@b.com", false},
		{"a@b.", false},
		{"a b@c.com", false},
		{"a@b .com", false},
		{"a\u00a0b@c.com", false},
		{"a\vb@c.com", false},
		{"a@b.com ", false},
		{"", false},
		{"ü@ö.de", true},
	}

	for _, tt := range tests {
		if got := Email(tt.in); got != tt.want {
			t.Errorf("Email(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormValid(t *testing.T) {
	res := Form(Fields{Name: "Jo", Email: "jo@x.com", Message: "Hello there!"})
	if !res.Valid {
		t.Errorf("Valid: got false, errors %v", res.Errors)
	}
	if res.Errors == nil {
		t.Fatal("Errors is nil, want empty map")
	}
	if len(res.Errors) != 0 {
		t.Errorf("Errors: got %v, want empty", res.Errors)
	}
}

func TestFormAllInvalid(t *testing.T) {
	res := Form(Fields{Name: "J", Email: "bad", Message: "hi"})
	if res.Valid {
		t.Fatal("Valid: got true, want false")
	}
	want := map[string]string{
		FieldName:    MsgName,
		FieldEmail:   MsgEmail,
		FieldMessage: MsgMessage,
	}
	if len(res.Errors) != len(want) {
		t.Fatalf("Errors: got %v, want %v", res.Errors, want)
	}
	for k, v := range want {
		if res.Errors[k] != v {
			t.Errorf("Errors[%q] = %q, want %q", k, res.Errors[k], v)
		}
	}
}

func TestFormTrimsBeforeCounting(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		bad    []string
	}{
		{"padded name", Fields{Name: "  J  ", Email: "a@b.co", Message: "0123456789"}, []string{FieldName}},
		{"padded message", Fields{Name: "Al", Email: "a@b.co", Message: "   short    \n"}, []string{FieldMessage}},
		{"exact minimums", Fields{Name: "Al", Email: "a@b.co", Message: "0123456789"}, nil},
		{"empty", Fields{}, []string{FieldName, FieldEmail, FieldMessage}},
		{"multibyte name", Fields{Name: "Ål", Email: "a@b.co", Message: "0123456789"}, nil},
		{"byte order mark trimmed", Fields{Name: "\ufeffJ", Email: "a@b.co", Message: "0123456789"}, []string{FieldName}},
		{"astral counts two units", Fields{Name: "😀", Email: "a@b.co", Message: "0123456789"}, nil},
		{"next line kept", Fields{Name: "J\u0085", Email: "a@b.co", Message: "0123456789"}, nil},
		{"ideographic space trimmed", Fields{Name: "\u3000J\u3000", Email: "a@b.co", Message: "0123456789"}, []string{FieldName}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Form(tt.fields)
			if res.Valid != (len(tt.bad) == 0) {
				t.Errorf("Valid = %v, errors %v", res.Valid, res.Errors)
			}
			if len(res.Errors) != len(tt.bad) {
				t.Errorf("Errors: got %v, want keys %v", res.Errors, tt.bad)
			}
			for _, k := range tt.bad {
				if _, ok := res.Errors[k]; !ok {
					t.Errorf("missing error for %q", k)
				}
			}
		})
	}
}
