// Package sqlite implementa los adaptadores de persistencia sobre una base de
// datos SQLite local (un solo archivo, configuración local al proceso).
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Open abre (o crea) el archivo SQLite y aplica los pragmas de robustez.
// El directorio contenedor se crea si no existe.
//
// Los pragmas van en el DSN, no en un Exec: database/sql mantiene un pool y un
// PRAGMA ejecutado con Exec solo afecta a la conexión que lo atendió. Con el
// DSN, el driver los aplica en cada conexión nueva del pool; en particular
// foreign_keys, del que depende el ON DELETE SET NULL de products.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de datos: %w", err)
		}
	}
	dsn := path + "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping base de datos: %w", err)
	}
	return db, nil
}

// InitSchema crea las cuatro tablas si no existen. Es idempotente y seguro de
// llamar en cada arranque del proceso; solo falla ante errores de almacenamiento
// irrecuperables (ej. permisos del sistema de archivos).
func InitSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			employee_id TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS suppliers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			contact_person TEXT,
			phone TEXT,
			email TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			description TEXT,
			price REAL NOT NULL,
			currency_code TEXT NOT NULL DEFAULT 'USD',
			stock INTEGER NOT NULL,
			safe_stock INTEGER NOT NULL DEFAULT 100,
			category_id INTEGER,
			supplier_id INTEGER,
			FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE SET NULL,
			FOREIGN KEY (supplier_id) REFERENCES suppliers(id) ON DELETE SET NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("inicializar esquema: %w", err)
		}
	}
	return nil
}
