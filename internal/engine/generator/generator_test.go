package generator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/casgen/internal/adapters/fs"
	"go.trai.ch/casgen/internal/core/domain"
	"go.trai.ch/casgen/internal/core/ports"
	"go.trai.ch/casgen/internal/core/ports/mocks"
	"go.trai.ch/casgen/internal/engine/generator"
	"go.uber.org/mock/gomock"
)

const (
	confPath = "/etc/opencas/opencas.conf"
	casadm   = "/usr/sbin/casadm"
)

func newTopology(t *testing.T, caches []domain.Cache, cores []domain.CoreDevice) *domain.Topology {
	t.Helper()
	topo := domain.NewTopology(confPath, domain.Limits{})
	for _, c := range caches {
		require.NoError(t, topo.AddCache(c))
	}
	for _, d := range cores {
		require.NoError(t, topo.AddCore(d))
	}
	return topo
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return log
}

func run(t *testing.T, log ports.Logger, topo *domain.Topology, out ports.Output, casadmPath string) (*domain.Report, error) {
	t.Helper()
	gen := generator.New(log, fs.NewHasher())
	return gen.Run(t.Context(), generator.Job{Topology: topo, Output: out, CasadmPath: casadmPath})
}

func TestRun_LocalPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("generated opencas@opencas1-0.service")

	topo := newTopology(t,
		[]domain.Cache{{ID: 1, Device: "/dev/sda", Mode: "wt"}},
		[]domain.CoreDevice{{CacheID: 1, CoreID: 0, Device: "/dev/sdb"}},
	)
	out := fs.NewOutputFactory().InMemory()

	report, err := run(t, log, topo, out, casadm)
	require.NoError(t, err)

	require.Len(t, report.Units, 1)
	assert.Equal(t, "opencas@opencas1-0.service", report.Units[0].Name)
	assert.Equal(t, "opencas.target", report.Units[0].Target)
	assert.Equal(t, []string{
		`dev-opencas1\x2d0.device.requires/opencas@opencas1-0.service`,
		"opencas.target.requires/opencas@opencas1-0.service",
	}, report.Units[0].Links)
	assert.Zero(t, report.LinkFailures)
	assert.Len(t, report.Digest, 16)

	artifacts, err := out.Snapshot()
	require.NoError(t, err)
	require.Len(t, artifacts, 3)

	assert.Equal(t, domain.Artifact{
		Path:       `dev-opencas1\x2d0.device.requires/opencas@opencas1-0.service`,
		LinkTarget: "../opencas@opencas1-0.service",
		IsLink:     true,
	}, artifacts[0])
	assert.Equal(t, domain.Artifact{
		Path:       "opencas.target.requires/opencas@opencas1-0.service",
		LinkTarget: "../opencas@opencas1-0.service",
		IsLink:     true,
	}, artifacts[1])
	assert.Equal(t, "opencas@opencas1-0.service", artifacts[2].Path)

	g := goldie.New(t)
	g.Assert(t, "local_unit", artifacts[2].Content)
}

func TestRun_RemotePair(t *testing.T) {
	ctrl := gomock.NewController(t)

	topo := newTopology(t,
		[]domain.Cache{{ID: 2, Device: "/dev/nvme0n1", Network: true}},
		[]domain.CoreDevice{{CacheID: 2, CoreID: 3, Device: "/dev/mapper/vg-lv", Network: true}},
	)
	out := fs.NewOutputFactory().InMemory()

	report, err := run(t, quietLogger(ctrl), topo, out, "/opt/cas/casadm")
	require.NoError(t, err)
	require.Len(t, report.Units, 1)
	assert.Equal(t, "remote-opencas.target", report.Units[0].Target)

	artifacts, err := out.Snapshot()
	require.NoError(t, err)

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		paths = append(paths, a.Path)
	}
	assert.Equal(t, []string{
		`dev-opencas2\x2d3.device.requires/opencas@opencas2-3.service`,
		"opencas@opencas2-3.service",
		"remote-opencas.target.requires/opencas@opencas2-3.service",
	}, paths)

	g := goldie.New(t)
	g.Assert(t, "remote_unit", artifacts[1].Content)
}

func TestRun_LocalCoreOnNetworkCache(t *testing.T) {
	ctrl := gomock.NewController(t)

	topo := newTopology(t,
		[]domain.Cache{{ID: 1, Device: "/dev/sda", Network: true}},
		[]domain.CoreDevice{{CacheID: 1, CoreID: 0, Device: "/dev/sdb"}},
	)
	out := fs.NewOutputFactory().InMemory()

	report, err := run(t, mocks.NewMockLogger(ctrl), topo, out, casadm)
	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, domain.ErrNetworkPolicyViolation))

	artifacts, err := out.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, artifacts)
}

func TestRun_MissingCacheStopsAtFailingDevice(t *testing.T) {
	ctrl := gomock.NewController(t)

	topo := newTopology(t,
		[]domain.Cache{{ID: 1, Device: "/dev/sda"}},
		[]domain.CoreDevice{
			{CacheID: 1, CoreID: 0, Device: "/dev/sdb"},
			{CacheID: 4, CoreID: 1, Device: "/dev/sdc"},
			{CacheID: 1, CoreID: 2, Device: "/dev/sdd"},
		},
	)
	out := fs.NewOutputFactory().InMemory()

	_, err := run(t, quietLogger(ctrl), topo, out, casadm)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheNotFound))
	assert.Contains(t, err.Error(), "core device with id 1 points to non-existing cache with id 4")

	artifacts, err := out.Snapshot()
	require.NoError(t, err)
	for _, a := range artifacts {
		assert.NotContains(t, a.Path, "opencas4-1")
		assert.NotContains(t, a.Path, "opencas1-2")
	}
	assert.Len(t, artifacts, 3, "units of earlier devices are kept")
}

func TestRun_RelativeDeviceLeavesNoUnit(t *testing.T) {
	ctrl := gomock.NewController(t)

	topo := newTopology(t,
		[]domain.Cache{{ID: 1, Device: "/dev/sda"}},
		[]domain.CoreDevice{{CacheID: 1, CoreID: 0, Device: "sdb"}},
	)
	out := fs.NewOutputFactory().InMemory()

	_, err := run(t, mocks.NewMockLogger(ctrl), topo, out, casadm)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDevicePathNotAbsolute))

	artifacts, err := out.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, artifacts)
}

func TestRun_UnitWriteFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	out := mocks.NewMockOutput(ctrl)
	out.EXPECT().WriteFile("opencas@opencas1-0.service", gomock.Any()).Return(errors.New("disk full"))

	topo := newTopology(t,
		[]domain.Cache{{ID: 1, Device: "/dev/sda"}},
		[]domain.CoreDevice{
			{CacheID: 1, CoreID: 0, Device: "/dev/sdb"},
			{CacheID: 1, CoreID: 1, Device: "/dev/sdc"},
		},
	)

	_, err := run(t, mocks.NewMockLogger(ctrl), topo, out, casadm)
	require.Error(t, err)
	assert.EqualError(t, err, "disk full")
}

// Link failures are reported and counted, yet every device is still processed
// and the run succeeds.
func TestRun_LinkFailuresAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	out := mocks.NewMockOutput(ctrl)
	out.EXPECT().WriteFile(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	out.EXPECT().MkdirAll(gomock.Any()).Return(errors.New("read-only file system")).Times(4)
	out.EXPECT().Symlink(gomock.Any(), gomock.Any()).Return(errors.New("read-only file system")).Times(4)

	log := quietLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).Times(8)

	topo := newTopology(t,
		[]domain.Cache{{ID: 1, Device: "/dev/sda"}},
		[]domain.CoreDevice{
			{CacheID: 1, CoreID: 0, Device: "/dev/sdb"},
			{CacheID: 1, CoreID: 1, Device: "/dev/sdc", Network: true},
		},
	)

	report, err := run(t, log, topo, out, casadm)
	require.NoError(t, err)
	require.Len(t, report.Units, 2)
	assert.Equal(t, 8, report.LinkFailures)
	assert.Empty(t, report.Units[0].Links)
	assert.Empty(t, report.Units[1].Links)
}

func TestRun_SymlinkAttemptedAfterMkdirFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	out := mocks.NewMockOutput(ctrl)
	out.EXPECT().WriteFile(gomock.Any(), gomock.Any()).Return(nil)
	gomock.InOrder(
		out.EXPECT().MkdirAll(`dev-opencas1\x2d0.device.requires`).Return(errors.New("no space left on device")),
		out.EXPECT().Symlink("../opencas@opencas1-0.service", `dev-opencas1\x2d0.device.requires/opencas@opencas1-0.service`).Return(nil),
		out.EXPECT().MkdirAll("opencas.target.requires").Return(nil),
		out.EXPECT().Symlink("../opencas@opencas1-0.service", "opencas.target.requires/opencas@opencas1-0.service").Return(nil),
	)

	log := quietLogger(ctrl)
	log.EXPECT().Error(gomock.Any())

	topo := newTopology(t,
		[]domain.Cache{{ID: 1, Device: "/dev/sda"}},
		[]domain.CoreDevice{{CacheID: 1, CoreID: 0, Device: "/dev/sdb"}},
	)

	report, err := run(t, log, topo, out, casadm)
	require.NoError(t, err)
	assert.Equal(t, 1, report.LinkFailures)
	assert.Len(t, report.Units[0].Links, 2)
}

func TestRun_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)

	topo := newTopology(t,
		[]domain.Cache{
			{ID: 1, Device: "/dev/sda"},
			{ID: 2, Device: "/dev/nvme0n1", Network: true},
		},
		[]domain.CoreDevice{
			{CacheID: 1, CoreID: 0, Device: "/dev/sdb"},
			{CacheID: 1, CoreID: 1, Device: "/dev/disk/by-id/ata-ST1000-Z1"},
			{CacheID: 2, CoreID: 0, Device: "/dev/sdc", Network: true},
		},
	)

	first := fs.NewOutputFactory().InMemory()
	second := fs.NewOutputFactory().InMemory()

	r1, err := run(t, quietLogger(ctrl), topo, first, casadm)
	require.NoError(t, err)
	r2, err := run(t, quietLogger(ctrl), topo, second, casadm)
	require.NoError(t, err)

	a1, err := first.Snapshot()
	require.NoError(t, err)
	a2, err := second.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.Equal(t, r1.Digest, r2.Digest)
	assert.Len(t, a1, 9)
}

// A second pass into the same destination rewrites identical units; existing
// directories are accepted and only the already present symlinks are reported.
func TestRun_RerunIntoSameDestination(t *testing.T) {
	ctrl := gomock.NewController(t)

	topo := newTopology(t,
		[]domain.Cache{{ID: 1, Device: "/dev/sda"}},
		[]domain.CoreDevice{{CacheID: 1, CoreID: 0, Device: "/dev/sdb"}},
	)
	out := fs.NewOutputFactory().InMemory()

	first, err := run(t, quietLogger(ctrl), topo, out, casadm)
	require.NoError(t, err)
	before, err := out.Snapshot()
	require.NoError(t, err)

	log := quietLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).Times(2)

	second, err := run(t, log, topo, out, casadm)
	require.NoError(t, err)
	assert.Equal(t, 2, second.LinkFailures)
	assert.Equal(t, first.Units[0].Digest, second.Units[0].Digest)

	after, err := out.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRun_DuplicateCacheIDWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := quietLogger(ctrl)
	log.EXPECT().Warn("cache id 1 is declared more than once, using the first declaration")

	topo := newTopology(t,
		[]domain.Cache{
			{ID: 1, Device: "/dev/sda"},
			{ID: 1, Device: "/dev/sdz"},
		},
		[]domain.CoreDevice{{CacheID: 1, CoreID: 0, Device: "/dev/sdb"}},
	)
	out := fs.NewOutputFactory().InMemory()

	_, err := run(t, log, topo, out, casadm)
	require.NoError(t, err)

	artifacts, err := out.Snapshot()
	require.NoError(t, err)
	assert.Contains(t, string(artifacts[2].Content), "BindsTo=dev-sda.device dev-sdb.device\n")
}

func TestRun_NoCores(t *testing.T) {
	ctrl := gomock.NewController(t)

	topo := newTopology(t, []domain.Cache{{ID: 1, Device: "/dev/sda"}}, nil)
	report, err := run(t, mocks.NewMockLogger(ctrl), topo, fs.NewOutputFactory().InMemory(), casadm)
	require.NoError(t, err)
	assert.Empty(t, report.Units)
}

func TestRun_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	topo := newTopology(t,
		[]domain.Cache{{ID: 1, Device: "/dev/sda"}},
		[]domain.CoreDevice{{CacheID: 1, CoreID: 0, Device: "/dev/sdb"}},
	)
	gen := generator.New(mocks.NewMockLogger(ctrl), fs.NewHasher())

	_, err := gen.Run(ctx, generator.Job{Topology: topo, Output: mocks.NewMockOutput(ctrl), CasadmPath: casadm})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
