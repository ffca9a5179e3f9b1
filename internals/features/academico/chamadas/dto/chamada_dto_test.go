package dto

import "testing"

func TestCalcularPercentual(t *testing.T) {
	tests := []struct {
		name      string
		presencas int64
		chamadas  int64
		want      float64
	}{
		{"presença total", 8, 8, 100},
		{"metade", 4, 8, 50},
		{"nenhuma presença", 0, 8, 0},
		{"sem chamadas no período", 0, 0, 0},
		{"fração", 2, 3, 200.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcularPercentual(tt.presencas, tt.chamadas)
			if got != tt.want {
				t.Errorf("CalcularPercentual(%d, %d) = %v, want %v", tt.presencas, tt.chamadas, got, tt.want)
			}
		})
	}
}
