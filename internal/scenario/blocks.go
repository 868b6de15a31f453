package scenario

import "github.com/zclconf/go-cty/cty"

// HCL shapes for a scenario file, decoded before translation into the model.

type fileContent struct {
	Warehouse *warehouseBlock `hcl:"warehouse,block"`
}

type warehouseBlock struct {
	GenerationTime    string            `hcl:"generation_time,optional"`
	SourceFingerprint string            `hcl:"source_fingerprint,optional"`
	ProductUnit       *productUnitBlock `hcl:"product_unit,block"`
	Process           *processBlock     `hcl:"process,block"`
}

type productUnitBlock struct {
	Identifier        string                `hcl:"identifier,optional"`
	FullName          string                `hcl:"full_name,optional"`
	Manufacturer      string                `hcl:"manufacturer,optional"`
	CreationTime      string                `hcl:"creation_time,optional"`
	ManufacturingTime string                `hcl:"manufacturing_time,optional"`
	Scrapped          bool                  `hcl:"scrapped,optional"`
	ScrapTime         string                `hcl:"scrap_time,optional"`
	Characteristics   []characteristicBlock `hcl:"characteristic,block"`
	Documents         []documentBlock       `hcl:"document,block"`
}

type processBlock struct {
	Name                  string            `hcl:"name,optional"`
	Version               string            `hcl:"version,optional"`
	Mode                  string            `hcl:"mode,optional"`
	ProductUnitIdentifier string            `hcl:"product_unit_identifier,optional"`
	ProductFullName       string            `hcl:"product_full_name,optional"`
	StartTime             string            `hcl:"start_time,optional"`
	EndTime               string            `hcl:"end_time,optional"`
	Status                string            `hcl:"status,optional"`
	Operations            []*operationBlock `hcl:"operation,block"`
}

type operationBlock struct {
	Name            string                `hcl:"name,optional"`
	Station         string                `hcl:"station,optional"`
	User            string                `hcl:"user,optional"`
	ProcessName     string                `hcl:"process_name,optional"`
	StartTime       string                `hcl:"start_time,optional"`
	EndTime         string                `hcl:"end_time,optional"`
	Status          string                `hcl:"status,optional"`
	Sequences       []*sequenceBlock      `hcl:"sequence,block"`
	Characteristics []characteristicBlock `hcl:"characteristic,block"`
	Documents       []documentBlock       `hcl:"document,block"`
}

type sequenceBlock struct {
	Name            string                `hcl:"name,optional"`
	Version         string                `hcl:"version,optional"`
	Station         string                `hcl:"station,optional"`
	User            string                `hcl:"user,optional"`
	StartTime       string                `hcl:"start_time,optional"`
	EndTime         string                `hcl:"end_time,optional"`
	Status          string                `hcl:"status,optional"`
	Steps           []*stepBlock          `hcl:"step,block"`
	Characteristics []characteristicBlock `hcl:"characteristic,block"`
	Documents       []documentBlock       `hcl:"document,block"`
}

type stepBlock struct {
	Name            string                `hcl:"name,optional"`
	StartTime       string                `hcl:"start_time,optional"`
	EndTime         string                `hcl:"end_time,optional"`
	Status          string                `hcl:"status,optional"`
	Measures        []*measureBlock       `hcl:"measure,block"`
	Characteristics []characteristicBlock `hcl:"characteristic,block"`
	Documents       []documentBlock       `hcl:"document,block"`
}

type measureBlock struct {
	Value    cty.Value   `hcl:"value"`
	Kind     string      `hcl:"kind,optional"`
	Time     string      `hcl:"time,optional"`
	Unit     string      `hcl:"unit,optional"`
	Symbol   string      `hcl:"symbol,optional"`
	Comments string      `hcl:"comments,optional"`
	Status   string      `hcl:"status,optional"`
	Limit    *limitBlock `hcl:"limit,block"`
}

type limitBlock struct {
	Expression string    `hcl:"expression"`
	Lower      cty.Value `hcl:"lower,optional"`
	Higher     cty.Value `hcl:"higher,optional"`
}

type characteristicBlock struct {
	FullName string `hcl:"full_name"`
	Value    string `hcl:"value,optional"`
}

type documentBlock struct {
	FileName    string `hcl:"file_name"`
	Identifier  string `hcl:"identifier,optional"`
	Name        string `hcl:"name,optional"`
	Description string `hcl:"description,optional"`
}
