package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePedidoStatus(t *testing.T) {
	for name, want := range map[string]PedidoStatus{
		"Novo":       StatusNovo,
		"EmProducao": StatusEmProducao,
		"Pronto":     StatusPronto,
		"Entregue":   StatusEntregue,
	} {
		got, err := ParsePedidoStatus(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := ParsePedidoStatus("Cancelado")
	assert.Error(t, err)
}

func TestPedidoStatusJSON(t *testing.T) {
	data, err := json.Marshal(StatusEmProducao)
	require.NoError(t, err)
	assert.Equal(t, `"EmProducao"`, string(data))

	var s PedidoStatus
	require.NoError(t, json.Unmarshal([]byte(`"Pronto"`), &s))
	assert.Equal(t, StatusPronto, s)

	// Integer form is accepted too.
	require.NoError(t, json.Unmarshal([]byte(`1`), &s))
	assert.Equal(t, StatusEmProducao, s)

	assert.Error(t, json.Unmarshal([]byte(`"Desconhecido"`), &s))
	assert.Error(t, json.Unmarshal([]byte(`99`), &s))
}

func TestPedidoStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusNovo.IsTerminal())
	assert.False(t, StatusEmProducao.IsTerminal())
	assert.True(t, StatusPronto.IsTerminal())
	assert.True(t, StatusEntregue.IsTerminal())
}
