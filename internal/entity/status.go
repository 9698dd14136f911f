package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// PedidoStatus is the lifecycle stage of a Pedido. It is stored as an
// integer and serialized as its name. There is no transition graph: any
// status may move to any other status.
type PedidoStatus int

const (
	StatusNovo PedidoStatus = iota
	StatusEmProducao
	StatusPronto
	StatusEntregue
)

var statusNames = map[PedidoStatus]string{
	StatusNovo:       "Novo",
	StatusEmProducao: "EmProducao",
	StatusPronto:     "Pronto",
	StatusEntregue:   "Entregue",
}

func (s PedidoStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("PedidoStatus(%d)", int(s))
}

// IsTerminal reports whether the status is one of the finished states.
func (s PedidoStatus) IsTerminal() bool {
	return s == StatusPronto || s == StatusEntregue
}

// ParsePedidoStatus parses a status name like "EmProducao".
func ParsePedidoStatus(name string) (PedidoStatus, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown pedido status %q", name)
}

func (s PedidoStatus) MarshalJSON() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal unknown pedido status %d", int(s))
	}
	return json.Marshal(name)
}

// UnmarshalJSON accepts either the status name or its integer value, so
// both `"EmProducao"` and `1` decode to StatusEmProducao.
func (s *PedidoStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := ParsePedidoStatus(name)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid pedido status %s", string(data))
	}
	if _, ok := statusNames[PedidoStatus(n)]; !ok {
		return fmt.Errorf("unknown pedido status %d", n)
	}
	*s = PedidoStatus(n)
	return nil
}
