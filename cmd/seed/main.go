// seed genera un script SQL para poblar el catálogo (laboratorios y
// medicamentos) a partir de una lista de precios CSV. Las listas de los
// laboratorios suelen venir en ISO-8859-1; el flag -latin1 activa la
// conversión a UTF-8 al leer.
//
// Formato esperado (con cabecera): id,nombre,laboratorio,precio_compra,precio_venta,stock_minimo
//
// Uso: go run ./cmd/seed [-latin1] [ruta/catalogo.csv]
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type medicineRow struct {
	id, name, manufacturer      string
	purchasePrice, sellingPrice string
	minStock                    string
}

func main() {
	latin1 := flag.Bool("latin1", false, "el CSV de entrada está en ISO-8859-1")
	flag.Parse()

	csvPath := "catalogo.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var input io.Reader = f
	if *latin1 {
		input = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	reader := csv.NewReader(input)
	reader.FieldsPerRecord = 6
	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV sin filas de datos")
		os.Exit(1)
	}

	// Laboratorios únicos + filas de medicamentos (saltando la cabecera).
	manufacturers := make(map[string]bool)
	var medicines []medicineRow
	for _, rec := range records[1:] {
		row := medicineRow{
			id:            strings.TrimSpace(rec[0]),
			name:          strings.TrimSpace(rec[1]),
			manufacturer:  strings.TrimSpace(rec[2]),
			purchasePrice: strings.TrimSpace(rec[3]),
			sellingPrice:  strings.TrimSpace(rec[4]),
			minStock:      strings.TrimSpace(rec[5]),
		}
		if row.id == "" || row.name == "" || row.manufacturer == "" {
			continue
		}
		manufacturers[row.manufacturer] = true
		medicines = append(medicines, row)
	}

	var labNames []string
	for name := range manufacturers {
		labNames = append(labNames, name)
	}
	sort.Strings(labNames)

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo inicial: laboratorios y medicamentos\n")
	out.WriteString("-- Generado desde una lista de precios CSV\n\n")

	out.WriteString("-- 1. Laboratorios\n")
	for _, name := range labNames {
		fmt.Fprintf(out, "INSERT INTO manufacturers (id, name, created_at, updated_at)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid(), '%s', now(), now())\n", escapeSQL(name))
		out.WriteString("ON CONFLICT (name) DO NOTHING;\n")
	}
	out.WriteString("\n-- 2. Medicamentos (con subquery al laboratorio)\n")
	for _, m := range medicines {
		fmt.Fprintf(out, "INSERT INTO medicines (id, name, manufacturer_id, manufacturer_name, purchase_price, selling_price, store_min_stock_level, created_at, updated_at)\n")
		fmt.Fprintf(out, "SELECT '%s', '%s', id, name, %s, %s, %s, now(), now() FROM manufacturers WHERE name = '%s'\n",
			escapeSQL(m.id), escapeSQL(m.name), m.purchasePrice, m.sellingPrice, m.minStock, escapeSQL(m.manufacturer))
		out.WriteString("ON CONFLICT (id) DO UPDATE SET purchase_price = EXCLUDED.purchase_price, selling_price = EXCLUDED.selling_price;\n")
	}

	fmt.Printf("Generado %s: %d laboratorios, %d medicamentos\n", outPath, len(labNames), len(medicines))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
