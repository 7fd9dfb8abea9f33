package datagen

import (
	"context"
	"database/sql"
	"math/rand"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mleodato/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/mleodato/restaurant-analytics-api/internal/config"
	"github.com/mleodato/restaurant-analytics-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const brandName = "Marca X"

var subBrandNames = []string{"SubMarca A", "SubMarca B"}

type channelSeed struct {
	name        string
	description string
	channelType string
}

// Presencial concentra a maior parte do volume; os canais de delivery
// dividem o restante em partes iguais.
var channelSeeds = []channelSeed{
	{name: "Presencial", description: "Venda no balcão", channelType: "P"},
	{name: "iFood", description: "Marketplace de delivery", channelType: "D"},
	{name: "Rappi", description: "Marketplace de delivery", channelType: "D"},
	{name: "App Próprio", description: "Aplicativo da casa", channelType: "D"},
}

var channelWeights = []float64{0.45, 0.183333, 0.183333, 0.183333}

type storeSeed struct {
	name     string
	city     string
	state    string
	district string
}

var storeSeeds = []storeSeed{
	{name: "Loja Centro", city: "São Paulo", state: "SP", district: "Centro"},
	{name: "Loja Paulista", city: "São Paulo", state: "SP", district: "Bela Vista"},
	{name: "Loja Savassi", city: "Belo Horizonte", state: "MG", district: "Savassi"},
	{name: "Loja Copacabana", city: "Rio de Janeiro", state: "RJ", district: "Copacabana"},
}

var categoryNames = []string{"Lanches", "Bebidas", "Sobremesas"}

type productSeed struct {
	name      string
	category  string
	basePrice float64
}

var productSeeds = []productSeed{
	{name: "X-Burger Clássico", category: "Lanches", basePrice: 18},
	{name: "X-Bacon Duplo", category: "Lanches", basePrice: 22},
	{name: "Combo da Casa", category: "Lanches", basePrice: 28},
	{name: "Picanha na Chapa", category: "Lanches", basePrice: 35},
	{name: "Suco Natural 500ml", category: "Bebidas", basePrice: 12},
	{name: "Refrigerante Lata", category: "Bebidas", basePrice: 8},
	{name: "Pudim de Leite", category: "Sobremesas", basePrice: 6},
}

type itemSeed struct {
	name     string
	category string
	price    float64
}

var itemSeeds = []itemSeed{
	{name: "Bacon Extra", category: "Lanches", price: 4},
	{name: "Queijo Extra", category: "Lanches", price: 3},
	{name: "Molho Especial", category: "Lanches", price: 2.5},
	{name: "Gelo e Limão", category: "Bebidas", price: 1.5},
}

var paymentTypeNames = []string{"Dinheiro", "Cartão de Crédito", "Cartão de Débito", "Pix"}

// Limites de preço unitário após o jitter aleatório
const (
	minUnitPrice = 4.00
	maxUnitPrice = 49.00
)

type channelRef struct {
	id          int64
	channelType string
}

type productRef struct {
	id        int64
	basePrice float64
}

type itemRef struct {
	id    int64
	price float64
}

type storeRef struct {
	id         int64
	subBrandID int64
}

// Dimensions agrupa os identificadores das tabelas de apoio já semeadas,
// prontos para serem referenciados pelas vendas geradas.
type Dimensions struct {
	brandID      int64
	stores       []storeRef
	channels     []channelRef
	products     map[int64][]productRef
	items        map[int64][]itemRef
	paymentTypes []int64
}

// Generator produz dados sintéticos de vendas com distribuição realista de
// canais, horários e valores. A mesma seed produz sempre o mesmo conjunto.
type Generator struct {
	conn  postgres.Conn
	cfg   config.Generator
	rng   *rand.Rand
	faker *gofakeit.Faker
}

func New(conn postgres.Conn, cfg config.Generator) *Generator {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 1000
	}

	return &Generator{
		conn:  conn,
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		faker: gofakeit.New(uint64(cfg.Seed)),
	}
}

// InitSchema aplica o schema completo. As DDLs são idempotentes, então o
// comando pode ser repetido sem efeito colateral.
func (g *Generator) InitSchema(ctx context.Context) error {
	if _, err := g.conn.ExecContext(ctx, schemaSQL); err != nil {
		return errors.Wrap(err, "erro ao aplicar o schema")
	}

	logrus.Info("Schema aplicado com sucesso")
	return nil
}

// SeedDimensions garante as tabelas de apoio (marca, lojas, canais, produtos,
// itens e tipos de pagamento), inserindo apenas o que ainda não existe.
func (g *Generator) SeedDimensions(ctx context.Context) (*Dimensions, error) {
	dims := &Dimensions{
		products: map[int64][]productRef{},
		items:    map[int64][]itemRef{},
	}

	brandID, err := g.ensureID(ctx, "brands",
		squirrel.Eq{"name": brandName},
		[]string{"name"},
		[]any{brandName},
	)
	if err != nil {
		return nil, err
	}
	dims.brandID = brandID

	subBrandIDs := make([]int64, 0, len(subBrandNames))
	for _, name := range subBrandNames {
		id, err := g.ensureID(ctx, "sub_brands",
			squirrel.Eq{"brand_id": brandID, "name": name},
			[]string{"brand_id", "name"},
			[]any{brandID, name},
		)
		if err != nil {
			return nil, err
		}
		subBrandIDs = append(subBrandIDs, id)
	}

	for _, ch := range channelSeeds {
		id, err := g.ensureID(ctx, "channels",
			squirrel.Eq{"brand_id": brandID, "name": ch.name},
			[]string{"brand_id", "name", "description", "type"},
			[]any{brandID, ch.name, ch.description, ch.channelType},
		)
		if err != nil {
			return nil, err
		}
		dims.channels = append(dims.channels, channelRef{id: id, channelType: ch.channelType})
	}

	for i, st := range storeSeeds {
		subBrandID := subBrandIDs[i%len(subBrandIDs)]
		id, err := g.ensureID(ctx, "stores",
			squirrel.Eq{"brand_id": brandID, "sub_brand_id": subBrandID, "name": st.name},
			[]string{"brand_id", "sub_brand_id", "name", "city", "state", "district", "creation_date"},
			[]any{brandID, subBrandID, st.name, st.city, st.state, st.district, time.Now().Format(time.DateOnly)},
		)
		if err != nil {
			return nil, err
		}
		dims.stores = append(dims.stores, storeRef{id: id, subBrandID: subBrandID})
	}

	for _, subBrandID := range subBrandIDs {
		categoryIDs := map[string]int64{}
		for _, name := range categoryNames {
			id, err := g.ensureID(ctx, "categories",
				squirrel.Eq{"brand_id": brandID, "sub_brand_id": subBrandID, "name": name},
				[]string{"brand_id", "sub_brand_id", "name", "type"},
				[]any{brandID, subBrandID, name, "P"},
			)
			if err != nil {
				return nil, err
			}
			categoryIDs[name] = id
		}

		for _, p := range productSeeds {
			id, err := g.ensureID(ctx, "products",
				squirrel.Eq{"brand_id": brandID, "sub_brand_id": subBrandID, "category_id": categoryIDs[p.category], "name": p.name},
				[]string{"brand_id", "sub_brand_id", "category_id", "name"},
				[]any{brandID, subBrandID, categoryIDs[p.category], p.name},
			)
			if err != nil {
				return nil, err
			}
			dims.products[subBrandID] = append(dims.products[subBrandID], productRef{id: id, basePrice: p.basePrice})
		}

		for _, it := range itemSeeds {
			id, err := g.ensureID(ctx, "items",
				squirrel.Eq{"brand_id": brandID, "sub_brand_id": subBrandID, "category_id": categoryIDs[it.category], "name": it.name},
				[]string{"brand_id", "sub_brand_id", "category_id", "name"},
				[]any{brandID, subBrandID, categoryIDs[it.category], it.name},
			)
			if err != nil {
				return nil, err
			}
			dims.items[subBrandID] = append(dims.items[subBrandID], itemRef{id: id, price: it.price})
		}
	}

	for _, name := range paymentTypeNames {
		id, err := g.ensureID(ctx, "payment_types",
			squirrel.Eq{"brand_id": brandID, "description": name},
			[]string{"brand_id", "description"},
			[]any{brandID, name},
		)
		if err != nil {
			return nil, err
		}
		dims.paymentTypes = append(dims.paymentTypes, id)
	}

	logrus.WithFields(logrus.Fields{
		"stores":   len(dims.stores),
		"channels": len(dims.channels),
	}).Info("Dimensões semeadas com sucesso")

	return dims, nil
}

type addonRow struct {
	itemID int64
	price  float64
}

type lineRow struct {
	productID int64
	quantity  int
	basePrice float64
	total     float64
	addons    []addonRow
}

type saleRow struct {
	storeID       int64
	subBrandID    int64
	channelID     int64
	paymentTypeID int64
	isDelivery    bool
	marker        string
	createdAt     time.Time
	customerName  sql.NullString
	totalItems    float64
	discount      float64
	increase      float64
	deliveryFee   float64
	serviceTax    float64
	total         float64
	lines         []lineRow
}

// SeedSales gera as vendas distribuídas pelos últimos meses configurados,
// gravando em lotes. Cada venda recebe um marcador único em cod_sale1 para
// recuperar os ids gerados pelo banco e amarrar itens e pagamentos.
func (g *Generator) SeedSales(ctx context.Context, dims *Dimensions) error {
	if len(dims.stores) == 0 || len(dims.channels) == 0 {
		return errors.New("dimensões vazias, rode SeedDimensions antes")
	}

	now := time.Now()
	windowStart := now.AddDate(0, -g.cfg.Months, 0)
	windowSeconds := int64(now.Sub(windowStart).Seconds())

	batch := make([]saleRow, 0, g.cfg.BatchSize)
	inserted := 0

	for i := 0; i < g.cfg.Rows; i++ {
		batch = append(batch, g.buildSale(dims, windowStart, windowSeconds))

		if len(batch) == g.cfg.BatchSize {
			if err := g.flushBatch(ctx, batch); err != nil {
				return err
			}
			inserted += len(batch)
			logrus.WithField("inserted", inserted).Info("Lote de vendas gravado")
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := g.flushBatch(ctx, batch); err != nil {
			return err
		}
		inserted += len(batch)
	}

	logrus.WithField("total", inserted).Info("Geração de vendas concluída")
	return nil
}

func (g *Generator) buildSale(dims *Dimensions, windowStart time.Time, windowSeconds int64) saleRow {
	store := dims.stores[g.rng.Intn(len(dims.stores))]
	channel := dims.channels[g.weightedPick(channelWeights)]
	isDelivery := channel.channelType == "D"

	sale := saleRow{
		storeID:       store.id,
		subBrandID:    store.subBrandID,
		channelID:     channel.id,
		paymentTypeID: dims.paymentTypes[g.rng.Intn(len(dims.paymentTypes))],
		isDelivery:    isDelivery,
		marker:        uuid.New().String(),
		createdAt:     windowStart.Add(time.Duration(g.rng.Int63n(windowSeconds)) * time.Second),
	}

	if g.rng.Float64() < 0.6 {
		sale.customerName = sql.NullString{String: g.faker.Name(), Valid: true}
	}

	products := dims.products[store.subBrandID]
	addons := dims.items[store.subBrandID]

	lineCount := 1 + g.rng.Intn(4)
	for l := 0; l < lineCount; l++ {
		p := products[g.rng.Intn(len(products))]

		unit := p.basePrice + g.uniform(-2, 3)
		unit = utils.RoundWithTwoDecimalPlace(clamp(unit, minUnitPrice, maxUnitPrice))

		line := lineRow{
			productID: p.id,
			quantity:  1 + g.rng.Intn(2),
			basePrice: unit,
		}
		line.total = utils.RoundWithTwoDecimalPlace(unit * float64(line.quantity))

		// ~30% das linhas levam um adicional
		if len(addons) > 0 && g.rng.Float64() < 0.3 {
			it := addons[g.rng.Intn(len(addons))]
			line.addons = append(line.addons, addonRow{itemID: it.id, price: it.price})
			line.total = utils.RoundWithTwoDecimalPlace(line.total + it.price)
		}

		sale.totalItems += line.total
		sale.lines = append(sale.lines, line)
	}
	sale.totalItems = utils.RoundWithTwoDecimalPlace(sale.totalItems)

	if isDelivery {
		sale.deliveryFee = utils.RoundWithTwoDecimalPlace(g.uniform(0, 9))
	} else {
		sale.serviceTax = utils.RoundWithTwoDecimalPlace(sale.totalItems * g.uniform(0, 0.10))
	}

	discountRates := []float64{0, 0, 0, 0.03, 0.05, 0.10}
	sale.discount = utils.RoundWithTwoDecimalPlace(sale.totalItems * discountRates[g.rng.Intn(len(discountRates))])

	increases := []float64{0, 0, 1, 2}
	sale.increase = increases[g.rng.Intn(len(increases))]

	sale.total = utils.RoundWithTwoDecimalPlace(
		sale.totalItems + sale.deliveryFee + sale.serviceTax + sale.increase - sale.discount,
	)

	return sale
}

// flushBatch grava o lote inteiro dentro de uma transação: falha no meio das
// inserções de itens ou pagamentos não deixa vendas órfãs para trás.
func (g *Generator) flushBatch(ctx context.Context, batch []saleRow) error {
	return g.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		markers, err := g.insertSales(ctx, tx, batch)
		if err != nil {
			return err
		}

		idByMarker, err := g.recoverSaleIDs(ctx, tx, markers)
		if err != nil {
			return err
		}

		return g.insertSaleChildren(ctx, tx, batch, idByMarker)
	})
}

func (g *Generator) insertSales(ctx context.Context, q postgres.Queryer, batch []saleRow) ([]string, error) {
	ins := squirrel.
		Insert("sales").
		Columns(
			"store_id", "sub_brand_id", "channel_id", "cod_sale1", "created_at",
			"customer_name", "sale_status_desc", "total_amount_items",
			"total_discount", "total_increase", "delivery_fee",
			"service_tax_fee", "total_amount", "value_paid",
			"people_quantity", "origin",
		)

	markers := make([]string, 0, len(batch))
	for _, s := range batch {
		markers = append(markers, s.marker)
		ins = ins.Values(
			s.storeID, s.subBrandID, s.channelID, s.marker, s.createdAt,
			s.customerName, "Finalizada", s.totalItems,
			s.discount, s.increase, s.deliveryFee,
			s.serviceTax, s.total, s.total,
			1+g.rng.Intn(4), "datagen",
		)
	}

	query, args, err := ins.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return nil, errors.Wrap(err, "erro ao inserir as vendas")
	}

	return markers, nil
}

// recoverSaleIDs busca os ids gerados pelo SERIAL a partir dos marcadores
// únicos gravados em cod_sale1.
func (g *Generator) recoverSaleIDs(ctx context.Context, q postgres.Queryer, markers []string) (map[string]int64, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT id, cod_sale1 FROM sales WHERE cod_sale1 = ANY($1)",
		pq.Array(markers),
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao recuperar os ids das vendas")
	}
	defer rows.Close()

	idByMarker := make(map[string]int64, len(markers))
	for rows.Next() {
		var (
			id     int64
			marker string
		)
		if err := rows.Scan(&id, &marker); err != nil {
			return nil, err
		}
		idByMarker[marker] = id
	}

	return idByMarker, rows.Err()
}

func (g *Generator) insertSaleChildren(ctx context.Context, q postgres.Queryer, batch []saleRow, idByMarker map[string]int64) error {
	psIns := squirrel.
		Insert("product_sales").
		Columns("sale_id", "product_id", "quantity", "base_price", "total_price", "created_at")

	payIns := squirrel.
		Insert("payments").
		Columns("sale_id", "payment_type_id", "value", "is_online", "currency")

	type pendingAddon struct {
		lineIndex int
		addon     addonRow
	}

	var (
		lineIndex int
		addons    []pendingAddon
		hasLines  bool
	)

	// A ordem de inserção das linhas casa com a ordem dos ids que o
	// RETURNING devolve.
	for _, s := range batch {
		saleID, ok := idByMarker[s.marker]
		if !ok {
			return errors.Errorf("venda com marcador %s não encontrada após inserção", s.marker)
		}

		for _, line := range s.lines {
			psIns = psIns.Values(saleID, line.productID, line.quantity, line.basePrice, line.total, s.createdAt)
			for _, ad := range line.addons {
				addons = append(addons, pendingAddon{lineIndex: lineIndex, addon: ad})
			}
			lineIndex++
			hasLines = true
		}

		payIns = payIns.Values(saleID, s.paymentTypeID, s.total, s.isDelivery, "BRL")
	}

	if hasLines {
		query, args, err := psIns.
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir a query")
		}

		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return errors.Wrap(err, "erro ao inserir os produtos das vendas")
		}

		lineIDs := make([]int64, 0, lineIndex)
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return err
			}
			lineIDs = append(lineIDs, id)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		rows.Close()

		if len(addons) > 0 {
			ipsIns := squirrel.
				Insert("item_product_sales").
				Columns("product_sale_id", "item_id", "quantity", "price")

			for _, pa := range addons {
				if pa.lineIndex >= len(lineIDs) {
					return errors.New("ids de product_sales insuficientes para os adicionais")
				}
				ipsIns = ipsIns.Values(lineIDs[pa.lineIndex], pa.addon.itemID, 1, pa.addon.price)
			}

			query, args, err := ipsIns.PlaceholderFormat(squirrel.Dollar).ToSql()
			if err != nil {
				return errors.Wrap(err, "erro ao construir a query")
			}

			if _, err := q.ExecContext(ctx, query, args...); err != nil {
				return errors.Wrap(err, "erro ao inserir os adicionais")
			}
		}
	}

	query, args, err := payIns.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao inserir os pagamentos")
	}

	return nil
}

// ensureID retorna o id de um registro, inserindo-o caso ainda não exista.
func (g *Generator) ensureID(ctx context.Context, table string, match squirrel.Eq, columns []string, values []any) (int64, error) {
	query, args, err := squirrel.
		Select("id").
		From(table).
		Where(match).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	var id int64
	err = g.conn.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	query, args, err = squirrel.
		Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	if err := g.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, errors.Wrapf(err, "erro ao inserir em %s", table)
	}

	return id, nil
}

// weightedPick sorteia um índice proporcional aos pesos informados.
func (g *Generator) weightedPick(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}

	r := g.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return i
		}
	}

	return len(weights) - 1
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
