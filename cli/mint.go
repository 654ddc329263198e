// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ChainSafe/nft-bridge/app"
	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/batch"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/minter"
)

var mintCMD = &cobra.Command{
	Use:   "mint",
	Short: "Mint a single asset on the source ledger",
	Long:  "The mint command issues one asset with the given metadata and waits for ledger validation",
	RunE:  mint,
}

var batchMintCMD = &cobra.Command{
	Use:   "batch",
	Short: "Mint up to 10 assets sequentially",
	Long:  "The batch command mints every request of a JSON file in order, spaced apart, and reports per item results",
	RunE:  batchMint,
}

// flag vars
var (
	metadataFile string
	name         string
	description  string
	image        string
	attributes   string
	transferFee  uint32
	mintFlags    uint32
	recipient    string
	taxon        uint32
	requestsFile string
)

func BindMetadataFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&metadataFile, "metadata-file", "", "Path to a JSON metadata document")
	cmd.Flags().StringVar(&name, "name", "", "Asset name")
	cmd.Flags().StringVar(&description, "description", "", "Asset description")
	cmd.Flags().StringVar(&image, "image", "", "Asset image URL")
	cmd.Flags().StringVar(&attributes, "attributes", "", `JSON list of attributes, e.g. [{"trait_type":"rank","value":1}]`)
}

func init() {
	BindMetadataFlags(mintCMD)
	mintCMD.Flags().Uint32Var(&transferFee, "transfer-fee", 0, "Secondary sale fee in 1/100000 units (0-50000)")
	mintCMD.Flags().Uint32Var(&mintFlags, "flags", 0, "Mint flags, defaults to transferable")
	mintCMD.Flags().StringVar(&recipient, "recipient", "", "Classic address receiving the minted asset")
	mintCMD.Flags().Uint32Var(&taxon, "taxon", 0, "Asset taxon, defaults to the configured taxon")

	batchMintCMD.Flags().StringVar(&requestsFile, "file", "", "Path to a JSON list of mint requests")
	_ = batchMintCMD.MarkFlagRequired("file")
	mintCMD.AddCommand(batchMintCMD)
}

// readMetadata builds metadata from the metadata file or the individual flags.
func readMetadata() (chains.AssetMetadata, error) {
	metadata := chains.AssetMetadata{}
	if metadataFile != "" {
		data, err := os.ReadFile(metadataFile)
		if err != nil {
			return metadata, err
		}
		err = json.Unmarshal(data, &metadata)
		return metadata, err
	}

	metadata.Name = name
	metadata.Description = description
	metadata.Image = image
	if attributes != "" {
		err := json.Unmarshal([]byte(attributes), &metadata.Attributes)
		if err != nil {
			return metadata, fmt.Errorf("invalid attributes: %w", err)
		}
	}
	return metadata, nil
}

func mint(cmd *cobra.Command, args []string) error {
	metadata, err := readMetadata()
	if err != nil {
		return err
	}

	req := minter.MintRequest{
		Metadata:  metadata,
		Recipient: recipient,
	}
	if cmd.Flags().Changed("transfer-fee") {
		req.TransferFee = &transferFee
	}
	if cmd.Flags().Changed("flags") {
		req.Flags = &mintFlags
	}
	if cmd.Flags().Changed("taxon") {
		req.Taxon = &taxon
	}

	core, err := app.Initialize(cmd.Context())
	if err != nil {
		return err
	}
	defer core.Close()

	result := core.Mint(cmd.Context(), req)
	if err := printResult(result); err != nil {
		return err
	}
	return result.Err
}

func batchMint(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(requestsFile)
	if err != nil {
		return err
	}
	var reqs []minter.MintRequest
	err = json.Unmarshal(data, &reqs)
	if err != nil {
		return err
	}

	core, err := app.Initialize(cmd.Context())
	if err != nil {
		return err
	}
	defer core.Close()

	report, err := core.BatchMint(cmd.Context(), reqs)
	if err != nil {
		return err
	}
	err = printResult(struct {
		Outcome batch.Outcome `json:"outcome"`
		*batch.Report
	}{report.Outcome(), report})
	if err != nil {
		return err
	}
	if report.Outcome() == batch.AllFailed {
		return fmt.Errorf("every batch item failed")
	}
	return nil
}
