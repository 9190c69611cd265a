package models

// TableSpec describes how one report table is assembled from its sources.
type TableSpec struct {
	// Name is the output sheet name.
	Name string `yaml:"name" json:"name" validate:"required"`
	// Sources lists workbook file names, in concatenation order.
	Sources []string `yaml:"sources" json:"sources" validate:"required,min=1,dive,required"`
	// SourceColumns are the input columns to keep, in order.
	SourceColumns []string `yaml:"source_columns" json:"source_columns" validate:"required,min=1,dive,required"`
	// Columns are the output names, matched to SourceColumns by position.
	Columns []string `yaml:"columns" json:"columns" validate:"required,min=1,dive,required"`
	// Drop lists output columns removed after assembly.
	Drop []string `yaml:"drop,omitempty" json:"drop,omitempty"`
	// PValueColumn is the output column used as the sort key.
	PValueColumn string `yaml:"p_value_column" json:"p_value_column" validate:"required"`
	// FixedColumns are output columns rendered with two decimals.
	FixedColumns []string `yaml:"fixed_columns,omitempty" json:"fixed_columns,omitempty"`
}
