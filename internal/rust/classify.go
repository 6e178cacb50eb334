package rust

import (
	"strings"

	"github.com/Quant-link/QLK-Contract-Quard/internal/model"
)

// Signature is one framework fingerprint: any marker hit claims the file.
type Signature struct {
	Label   model.ContractType
	Markers []string
}

// Signatures are tried in order; the first rule with a matching marker wins.
var Signatures = []Signature{
	{model.ContractInk, []string{"#[ink::contract]", "ink_lang"}},
	{model.ContractCosmWasm, []string{"cosmwasm_std", "InstantiateMsg"}},
	{model.ContractAnchor, []string{"anchor_lang", "#[program]"}},
	{model.ContractNear, []string{"near_sdk", "#[near_bindgen]"}},
}

// DetectContractType classifies raw source text by framework fingerprint.
// It is a pure substring heuristic, independent of whether the text parses,
// and falls back to "generic" when no marker matches.
func DetectContractType(source string) model.ContractType {
	for _, sig := range Signatures {
		for _, marker := range sig.Markers {
			if strings.Contains(source, marker) {
				return sig.Label
			}
		}
	}
	return model.ContractGeneric
}
