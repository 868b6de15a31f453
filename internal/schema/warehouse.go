package schema

import "encoding/xml"

// Namespace is the warehouse target namespace. The writer emits it as the
// single default (unprefixed) namespace on the document root.
const Namespace = "http://schemas.proligent.com/datawarehouse/v1"

// Datawarehouse is the document root. The warehouse schema models the two
// child collections as repeatable, but producers always emit zero or one of
// each.
type Datawarehouse struct {
	XMLName               xml.Name       `xml:"http://schemas.proligent.com/datawarehouse/v1 ProligentDatawarehouse"`
	GenerationTime        string         `xml:"GenerationTime"`
	DataSourceFingerprint string         `xml:"DataSourceFingerprint"`
	TopProcessRun         []*ProcessRun  `xml:"TopProcessRun,omitempty"`
	ProductUnit           []*ProductUnit `xml:"ProductUnit,omitempty"`
}

// ProcessRun is the top level of the execution hierarchy.
type ProcessRun struct {
	ProcessRunId          string          `xml:"ProcessRunId"`
	ProcessFullName       string          `xml:"ProcessFullName,omitempty"`
	ProcessVersion        string          `xml:"ProcessVersion,omitempty"`
	ProcessMode           string          `xml:"ProcessMode,omitempty"`
	ProcessRunStatus      ExecutionStatus `xml:"ProcessRunStatus"`
	ProcessRunStartTime   string          `xml:"ProcessRunStartTime"`
	ProcessRunEndTime     string          `xml:"ProcessRunEndTime,omitempty"`
	ProductUnitIdentifier string          `xml:"ProductUnitIdentifier"`
	ProductFullName       string          `xml:"ProductFullName"`
	OperationRun          []*OperationRun `xml:"OperationRun,omitempty"`
}

// OperationRun groups the sequence runs executed within one process operation.
type OperationRun struct {
	OperationRunId        string            `xml:"OperationRunId"`
	OperationName         string            `xml:"OperationName,omitempty"`
	ProcessFullName       string            `xml:"ProcessFullName,omitempty"`
	OperationStatus       ExecutionStatus   `xml:"OperationStatus"`
	OperationRunStartTime string            `xml:"OperationRunStartTime"`
	OperationRunEndTime   string            `xml:"OperationRunEndTime,omitempty"`
	StationFullName       string            `xml:"StationFullName,omitempty"`
	User                  string            `xml:"User,omitempty"`
	SequenceRun           []*SequenceRun    `xml:"SequenceRun,omitempty"`
	Characteristic        []*Characteristic `xml:"Characteristic,omitempty"`
	Document              []*Document       `xml:"Document,omitempty"`
}

// SequenceRun is an ordered collection of step runs executed on one station.
type SequenceRun struct {
	SequenceRunId           string            `xml:"SequenceRunId"`
	SequenceFullName        string            `xml:"SequenceFullName,omitempty"`
	SequenceVersion         string            `xml:"SequenceVersion,omitempty"`
	SequenceExecutionStatus ExecutionStatus   `xml:"SequenceExecutionStatus"`
	StartDate               string            `xml:"StartDate"`
	EndDate                 string            `xml:"EndDate,omitempty"`
	StationFullName         string            `xml:"StationFullName,omitempty"`
	User                    string            `xml:"User,omitempty"`
	StepRun                 []*StepRun        `xml:"StepRun,omitempty"`
	Characteristic          []*Characteristic `xml:"Characteristic,omitempty"`
	Document                []*Document       `xml:"Document,omitempty"`
}

// StepRun is the execution record of a single manufacturing step.
type StepRun struct {
	StepRunId           string            `xml:"StepRunId"`
	StepName            string            `xml:"StepName,omitempty"`
	StepExecutionStatus ExecutionStatus   `xml:"StepExecutionStatus"`
	StartDate           string            `xml:"StartDate"`
	EndDate             string            `xml:"EndDate,omitempty"`
	Measure             []*Measure        `xml:"Measure,omitempty"`
	Characteristic      []*Characteristic `xml:"Characteristic,omitempty"`
	Document            []*Document       `xml:"Document,omitempty"`
}

// Measure is a single typed measurement captured during a step run.
type Measure struct {
	MeasureId              string          `xml:"MeasureId"`
	Value                  MeasureValue    `xml:"Value"`
	MeasureTime            string          `xml:"MeasureTime"`
	Limit                  *MeasureLimit   `xml:"Limit,omitempty"`
	Comments               string          `xml:"Comments,omitempty"`
	Unit                   string          `xml:"Unit,omitempty"`
	Symbol                 string          `xml:"Symbol,omitempty"`
	MeasureExecutionStatus ExecutionStatus `xml:"MeasureExecutionStatus,omitempty"`
}

// MeasureValue carries the measured value's text form plus its explicit kind.
type MeasureValue struct {
	Kind MeasureKind `xml:"Kind,attr"`
	Text string      `xml:",chardata"`
}

// MeasureLimit holds the rendered limit expression, bounds substituted.
type MeasureLimit struct {
	LimitExpression string `xml:"LimitExpression"`
}

// ProductUnit describes the physical unit under test, independent of the
// execution hierarchy.
type ProductUnit struct {
	ProductUnitIdentifier string            `xml:"ProductUnitIdentifier"`
	ProductFullName       string            `xml:"ProductFullName"`
	ByManufacturer        string            `xml:"ByManufacturer,omitempty"`
	CreationTime          string            `xml:"CreationTime,omitempty"`
	ManufacturingTime     string            `xml:"ManufacturingTime,omitempty"`
	Scrapped              bool              `xml:"Scrapped,omitempty"`
	ScrappedTime          string            `xml:"ScrappedTime,omitempty"`
	Characteristic        []*Characteristic `xml:"Characteristic,omitempty"`
	Document              []*Document       `xml:"Document,omitempty"`
}

// Characteristic is a free-form name/value metadata pair.
type Characteristic struct {
	FullName string `xml:"FullName"`
	Value    string `xml:"Value,omitempty"`
}

// Document references an external artifact attached to a run or product unit.
type Document struct {
	Identifier  string `xml:"Identifier"`
	FileName    string `xml:"FileName"`
	Name        string `xml:"Name,omitempty"`
	Description string `xml:"Description,omitempty"`
}
