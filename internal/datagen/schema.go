package datagen

// Schema ERP de vendas usado pelo gerador e consultado pela API. As DDLs são
// idempotentes para permitir reaplicação em bancos já provisionados.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS brands (
	id   SERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS sub_brands (
	id       SERIAL PRIMARY KEY,
	brand_id INT NOT NULL REFERENCES brands(id),
	name     VARCHAR(100) NOT NULL,
	UNIQUE (brand_id, name)
);

CREATE TABLE IF NOT EXISTS channels (
	id          SERIAL PRIMARY KEY,
	brand_id    INT NOT NULL REFERENCES brands(id),
	name        VARCHAR(100) NOT NULL,
	description VARCHAR(255),
	type        CHAR(1) NOT NULL,
	UNIQUE (brand_id, name)
);

CREATE TABLE IF NOT EXISTS stores (
	id            SERIAL PRIMARY KEY,
	brand_id      INT NOT NULL REFERENCES brands(id),
	sub_brand_id  INT NOT NULL REFERENCES sub_brands(id),
	name          VARCHAR(100) NOT NULL,
	city          VARCHAR(100),
	state         VARCHAR(2),
	district      VARCHAR(100),
	is_active     BOOLEAN NOT NULL DEFAULT TRUE,
	is_own        BOOLEAN NOT NULL DEFAULT TRUE,
	creation_date DATE,
	UNIQUE (brand_id, sub_brand_id, name)
);

CREATE TABLE IF NOT EXISTS categories (
	id           SERIAL PRIMARY KEY,
	brand_id     INT NOT NULL REFERENCES brands(id),
	sub_brand_id INT NOT NULL REFERENCES sub_brands(id),
	name         VARCHAR(100) NOT NULL,
	type         CHAR(1) NOT NULL DEFAULT 'P',
	UNIQUE (brand_id, sub_brand_id, name)
);

CREATE TABLE IF NOT EXISTS products (
	id           SERIAL PRIMARY KEY,
	brand_id     INT NOT NULL REFERENCES brands(id),
	sub_brand_id INT NOT NULL REFERENCES sub_brands(id),
	category_id  INT NOT NULL REFERENCES categories(id),
	name         VARCHAR(120) NOT NULL,
	UNIQUE (brand_id, sub_brand_id, category_id, name)
);

CREATE TABLE IF NOT EXISTS items (
	id           SERIAL PRIMARY KEY,
	brand_id     INT NOT NULL REFERENCES brands(id),
	sub_brand_id INT NOT NULL REFERENCES sub_brands(id),
	category_id  INT NOT NULL REFERENCES categories(id),
	name         VARCHAR(120) NOT NULL,
	UNIQUE (brand_id, sub_brand_id, category_id, name)
);

CREATE TABLE IF NOT EXISTS payment_types (
	id          SERIAL PRIMARY KEY,
	brand_id    INT NOT NULL REFERENCES brands(id),
	description VARCHAR(100) NOT NULL,
	UNIQUE (brand_id, description)
);

CREATE TABLE IF NOT EXISTS sales (
	id                 SERIAL PRIMARY KEY,
	store_id           INT NOT NULL REFERENCES stores(id),
	sub_brand_id       INT NOT NULL REFERENCES sub_brands(id),
	customer_id        INT,
	channel_id         INT NOT NULL REFERENCES channels(id),
	cod_sale1          VARCHAR(64) UNIQUE,
	cod_sale2          VARCHAR(64),
	created_at         TIMESTAMP NOT NULL DEFAULT NOW(),
	customer_name      VARCHAR(120),
	sale_status_desc   VARCHAR(30),
	total_amount_items NUMERIC(12,2),
	total_discount     NUMERIC(12,2),
	total_increase     NUMERIC(12,2),
	delivery_fee       NUMERIC(12,2),
	service_tax_fee    NUMERIC(12,2),
	total_amount       NUMERIC(12,2) NOT NULL,
	value_paid         NUMERIC(12,2),
	production_seconds INT,
	delivery_seconds   INT,
	people_quantity    INT,
	discount_reason    VARCHAR(255),
	increase_reason    VARCHAR(255),
	origin             VARCHAR(20)
);

CREATE TABLE IF NOT EXISTS product_sales (
	id           SERIAL PRIMARY KEY,
	sale_id      INT NOT NULL REFERENCES sales(id),
	product_id   INT NOT NULL REFERENCES products(id),
	quantity     NUMERIC(10,2) NOT NULL DEFAULT 1,
	base_price   NUMERIC(12,2),
	total_price  NUMERIC(12,2),
	observations VARCHAR(255),
	created_at   TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS item_product_sales (
	id              SERIAL PRIMARY KEY,
	product_sale_id INT NOT NULL REFERENCES product_sales(id),
	item_id         INT NOT NULL REFERENCES items(id),
	quantity        NUMERIC(10,2) NOT NULL DEFAULT 1,
	price           NUMERIC(12,2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS payments (
	id              SERIAL PRIMARY KEY,
	sale_id         INT NOT NULL REFERENCES sales(id),
	payment_type_id INT NOT NULL REFERENCES payment_types(id),
	value           NUMERIC(12,2) NOT NULL,
	is_online       BOOLEAN NOT NULL DEFAULT FALSE,
	description     VARCHAR(120),
	currency        CHAR(3) NOT NULL DEFAULT 'BRL'
);

CREATE TABLE IF NOT EXISTS dashboard_snapshots (
	id         SERIAL PRIMARY KEY,
	day        DATE NOT NULL UNIQUE,
	summary    JSONB,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_sales_created_at ON sales (created_at);
CREATE INDEX IF NOT EXISTS idx_sales_channel_id ON sales (channel_id);
CREATE INDEX IF NOT EXISTS idx_product_sales_sale_id ON product_sales (sale_id);
CREATE INDEX IF NOT EXISTS idx_product_sales_created_at ON product_sales (created_at);
CREATE INDEX IF NOT EXISTS idx_item_product_sales_ps_id ON item_product_sales (product_sale_id);
CREATE INDEX IF NOT EXISTS idx_payments_sale_id ON payments (sale_id);
`
