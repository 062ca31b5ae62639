package cli

import (
	"bytes"
	"context"
	"errors"
	"route-resolver-service/internal/domain"
	"route-resolver-service/internal/ports"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	info *domain.RouteInfo
	err  error
	got  [2]string
}

func (f *fakeResolver) Resolve(ctx context.Context, origin, destination string) (*domain.RouteInfo, error) {
	f.got = [2]string{origin, destination}
	return f.info, f.err
}

type fakeCatalog struct {
	rutas    []domain.Ruta
	reservas []domain.Reserva
	err      error

	created   domain.Ruta
	updatedID int64
	deletedID int64
	reserva   domain.Reserva
	listedFor int64
}

func (f *fakeCatalog) ListRutas(ctx context.Context) ([]domain.Ruta, error) {
	return f.rutas, f.err
}

func (f *fakeCatalog) CreateRuta(ctx context.Context, r domain.Ruta) (domain.Ruta, error) {
	f.created = r
	r.ID = 1
	return r, f.err
}

func (f *fakeCatalog) UpdateRuta(ctx context.Context, id int64, r domain.Ruta) (domain.Ruta, error) {
	f.updatedID = id
	r.ID = id
	return r, f.err
}

func (f *fakeCatalog) DeleteRuta(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.err
}

func (f *fakeCatalog) CreateReserva(ctx context.Context, r domain.Reserva) (domain.Reserva, error) {
	f.reserva = r
	r.ID = 9
	return r, f.err
}

func (f *fakeCatalog) ListReservasByRuta(ctx context.Context, rutaID int64) ([]domain.Reserva, error) {
	f.listedFor = rutaID
	return f.reservas, f.err
}

// run executes the command tree with args and returns the combined output.
// Flag variables are package state, so they are reset on every run.
func run(t *testing.T, res RouteResolver, cat *fakeCatalog, args ...string) (string, error) {
	t.Helper()

	resolveRaw, resolveJSON = false, false
	rutaOrigen, rutaDestino, rutaDescripcion = "", "", ""
	reservaNombre, reservaRuta = "", 0

	var c ports.Catalog
	if cat != nil {
		c = cat
	}
	SetServices(res, c)
	t.Cleanup(func() { SetServices(nil, nil) })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := Execute(context.Background())
	return buf.String(), err
}

func TestResolveCmd_RequiresTwoArgs(t *testing.T) {
	_, err := run(t, &fakeResolver{}, nil, "resolve", "Quito")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestResolveCmd_PrintsDurationAndLink(t *testing.T) {
	link := "https://www.google.com/maps/dir/Quito/Cuenca"
	res := &fakeResolver{info: &domain.RouteInfo{
		Origin:      "Quito",
		Destination: "Cuenca",
		RawPayload:  "payload text",
		Fields:      domain.ExtractedFields{DurationText: "2 horas y 5 minutos", MapLink: &link},
		Endpoint:    "primary",
	}}

	out, err := run(t, res, nil, "resolve", "Quito", "Cuenca")
	require.NoError(t, err)
	assert.Equal(t, [2]string{"Quito", "Cuenca"}, res.got)
	assert.Contains(t, out, "2 horas y 5 minutos")
	assert.Contains(t, out, link)
	assert.NotContains(t, out, "payload text")
}

func TestResolveCmd_RawAndJSON(t *testing.T) {
	res := &fakeResolver{info: &domain.RouteInfo{
		Origin:      "A",
		Destination: "B",
		RawPayload:  "payload text",
		Fields:      domain.ExtractedFields{DurationText: domain.DurationUnavailable},
		Endpoint:    "secondary",
	}}

	out, err := run(t, res, nil, "resolve", "--json", "--raw", "A", "B")
	require.NoError(t, err)
	assert.Contains(t, out, `"duration": "unavailable"`)
	assert.Contains(t, out, `"map_link": null`)
	assert.Contains(t, out, `"raw_response": "payload text"`)
	assert.Contains(t, out, `"endpoint": "secondary"`)
}

func TestResolveCmd_FailureReturnsResolutionError(t *testing.T) {
	res := &fakeResolver{err: domain.NewResolutionError(domain.KindNetworkUnreachable, errors.New("dial tcp"))}

	_, err := run(t, res, nil, "resolve", "A", "B")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetworkUnreachable)
	assert.Equal(t, domain.MessageFor(domain.KindNetworkUnreachable, nil), ErrorMessage(err))
}

func TestResolveCmd_NotConfigured(t *testing.T) {
	_, err := run(t, nil, nil, "resolve", "A", "B")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestErrorMessage_PlainError(t *testing.T) {
	assert.Equal(t, "boom", ErrorMessage(errors.New("boom")))
}

func TestRutasCmd_List(t *testing.T) {
	cat := &fakeCatalog{rutas: []domain.Ruta{{ID: 3, Origen: "Quito", Destino: "Loja", Descripcion: "Sur"}}}

	out, err := run(t, nil, cat, "rutas", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "[3] Quito → Loja")
	assert.Contains(t, out, "Sur")
}

func TestRutasCmd_ListEmpty(t *testing.T) {
	out, err := run(t, nil, &fakeCatalog{}, "rutas", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No routes found.")
}

func TestRutasCmd_CreateUsesFlags(t *testing.T) {
	cat := &fakeCatalog{}

	out, err := run(t, nil, cat, "rutas", "create", "--origen", "Quito", "--destino", "Ambato", "--descripcion", "Centro")
	require.NoError(t, err)
	assert.Equal(t, domain.Ruta{Origen: "Quito", Destino: "Ambato", Descripcion: "Centro"}, cat.created)
	assert.Contains(t, out, "Created:")
}

func TestRutasCmd_UpdateAndDelete(t *testing.T) {
	cat := &fakeCatalog{}

	_, err := run(t, nil, cat, "rutas", "update", "4", "--origen", "A", "--destino", "B", "--descripcion", "C")
	require.NoError(t, err)
	assert.Equal(t, int64(4), cat.updatedID)

	out, err := run(t, nil, cat, "rutas", "delete", "4")
	require.NoError(t, err)
	assert.Equal(t, int64(4), cat.deletedID)
	assert.Contains(t, out, "Deleted route 4")
}

func TestRutasCmd_InvalidID(t *testing.T) {
	_, err := run(t, nil, &fakeCatalog{}, "rutas", "delete", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive integer")
}

func TestRutasCmd_CatalogError(t *testing.T) {
	_, err := run(t, nil, &fakeCatalog{err: errors.New("backend down")}, "rutas", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend down")
}

func TestReservasCmd_Create(t *testing.T) {
	cat := &fakeCatalog{}

	out, err := run(t, nil, cat, "reservas", "create", "--nombre", "Ana", "--ruta", "4")
	require.NoError(t, err)
	assert.Equal(t, domain.Reserva{Nombre: "Ana", Ruta: domain.RutaRef{ID: 4}}, cat.reserva)
	assert.Contains(t, out, "Reserved [9] Ana on route 4")
}

func TestReservasCmd_List(t *testing.T) {
	cat := &fakeCatalog{reservas: []domain.Reserva{{ID: 1, Nombre: "Ana"}, {ID: 2, Nombre: "Luis"}}}

	out, err := run(t, nil, cat, "reservas", "list", "4")
	require.NoError(t, err)
	assert.Equal(t, int64(4), cat.listedFor)
	assert.Contains(t, out, "[1] Ana")
	assert.Contains(t, out, "[2] Luis")
}

func TestCatalogCmds_NotConfigured(t *testing.T) {
	_, err := run(t, nil, nil, "rutas", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog not configured")
}
