package types

import "testing"

func TestParseInterp(t *testing.T) {
	tests := []struct {
		input   string
		want    Interp
		wantErr bool
	}{
		{input: "constant", want: InterpConstant},
		{input: "uniform", want: InterpUniform},
		{input: "vertex", want: InterpVertex},
		{input: "faceVarying", want: InterpFaceVarying},
		{input: "", want: InterpNone},
		{input: "facevarying", wantErr: true},
		{input: "varying", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseInterp(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseInterp(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseInterp(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTimeCode_String(t *testing.T) {
	tests := []struct {
		tc   TimeCode
		want string
	}{
		{tc: DefaultTime(), want: "default"},
		{tc: Time(1001), want: "1001"},
		{tc: Time(1001.25), want: "1001.25"},
		{tc: Time(0), want: "0"},
		{tc: Time(-12), want: "-12"},
	}

	for _, tt := range tests {
		if got := tt.tc.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
