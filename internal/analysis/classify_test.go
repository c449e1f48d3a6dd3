package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"univariate/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		typeName string
		want     domain.Kind
	}{
		{"BIGINT", domain.Numeric},
		{"INTEGER", domain.Numeric},
		{"DOUBLE", domain.Numeric},
		{"double", domain.Numeric},
		{"FLOAT", domain.Numeric},
		{"HUGEINT", domain.Numeric},
		{"UBIGINT", domain.Numeric},
		{"DECIMAL(18,3)", domain.Numeric},
		{" DECIMAL (10, 2) ", domain.Numeric},
		{"VARCHAR", domain.Categorical},
		{"BOOLEAN", domain.Categorical},
		{"DATE", domain.Categorical},
		{"TIMESTAMP", domain.Categorical},
		{"TIME", domain.Categorical},
		{"BIGINT[]", domain.Categorical},
		{"", domain.Categorical},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.typeName))
		})
	}
}
