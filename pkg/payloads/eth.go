package payloads

import (
	"github.com/mitchellh/mapstructure"

	"github.com/vatesfr/wsrpc-go-sdk/internal/common/core"
)

// NewHead is the payload of a newHeads push. Quantities are kept as the hex
// strings sent by the node.
type NewHead struct {
	Number           string `json:"number"`
	Hash             string `json:"hash"`
	ParentHash       string `json:"parentHash"`
	Miner            string `json:"miner"`
	StateRoot        string `json:"stateRoot"`
	TransactionsRoot string `json:"transactionsRoot"`
	ReceiptsRoot     string `json:"receiptsRoot"`
	GasLimit         string `json:"gasLimit"`
	GasUsed          string `json:"gasUsed"`
	Timestamp        string `json:"timestamp"`
	BaseFeePerGas    string `json:"baseFeePerGas,omitempty"`
}

// Log is the payload of a logs push.
type Log struct {
	Address          string   `json:"address"`
	Topics           []string `json:"topics"`
	Data             string   `json:"data"`
	BlockNumber      string   `json:"blockNumber"`
	BlockHash        string   `json:"blockHash"`
	TransactionHash  string   `json:"transactionHash"`
	TransactionIndex string   `json:"transactionIndex"`
	LogIndex         string   `json:"logIndex"`
	Removed          bool     `json:"removed"`
}

// DecodeResult converts a generic decoded JSON value (maps, slices, float64,
// strings) into out, which must be a non-nil pointer. Struct fields are
// matched by their json tag and scalar types are converted weakly, so a
// float64 id decodes into an int field.
func DecodeResult(in any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return core.ErrFailedToDecodeResult.WithArgs(out, err)
	}
	if err := decoder.Decode(in); err != nil {
		return core.ErrFailedToDecodeResult.WithArgs(out, err)
	}
	return nil
}
