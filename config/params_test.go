package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkveil/cellgrow/config"
)

func TestDefault_PassesValidate(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestValidate_RejectsNonPositiveRestLength(t *testing.T) {
	p := config.Default()
	p.LinkRestLength = 0
	require.ErrorIs(t, p.Validate(), config.ErrParameterOutOfRange)
}

func TestValidate_RejectsZeroWorkerCount(t *testing.T) {
	p := config.Default()
	p.WorkerCount = 0
	require.ErrorIs(t, p.Validate(), config.ErrParameterOutOfRange)
}

func TestValidate_RejectsNegativeDetail(t *testing.T) {
	p := config.Default()
	p.Detail = -1
	require.ErrorIs(t, p.Validate(), config.ErrEmptySeedMesh)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	p, err := config.Load("/nonexistent/path/cellgrow.yaml")
	require.NoError(t, err)
	require.Equal(t, config.Default(), *p)
}

func TestCellParams_ProjectsForceFactors(t *testing.T) {
	p := config.Default()
	cp := p.CellParams()
	require.Equal(t, p.SplitThreshold, cp.SplitThreshold)
	require.Equal(t, p.SpringFactor, cp.SpringFactor)
}
