package chart

import "testing"

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		p       Params
		wantErr bool
	}{
		{"defaults", DefaultParams(), false},
		{"min colors", Params{Colors: 3}, false},
		{"max everything", Params{Colors: 7, Smoothing: MaxSmoothing, LineBias: MaxLineBias}, false},
		{"colors too low", Params{Colors: 2}, true},
		{"colors too high", Params{Colors: 8}, true},
		{"negative smoothing", Params{Colors: 7, Smoothing: -1}, true},
		{"smoothing too high", Params{Colors: 7, Smoothing: 7}, true},
		{"negative line bias", Params{Colors: 7, LineBias: -1}, true},
		{"line bias too high", Params{Colors: 7, LineBias: 11}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParamsClamped(t *testing.T) {
	tests := []struct {
		name string
		in   Params
		want Params
	}{
		{"in range untouched", Params{Seed: 5, Colors: 5, Smoothing: 2, LineBias: 1}, Params{Seed: 5, Colors: 5, Smoothing: 2, LineBias: 1}},
		{"all below", Params{Colors: 0, Smoothing: -3, LineBias: -2}, Params{Colors: MinColors}},
		{"all above", Params{Colors: 99, Smoothing: 99, LineBias: 99}, Params{Colors: MaxColors, Smoothing: MaxSmoothing, LineBias: MaxLineBias}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamped()
			if got != tt.want {
				t.Errorf("Clamped() = %+v, want %+v", got, tt.want)
			}
			if err := got.Validate(); err != nil {
				t.Errorf("clamped params must validate: %v", err)
			}
		})
	}
}
