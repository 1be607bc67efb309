// Package importer наполняет каталог из CSV файла. Формат: заголовок
// subject,topic,price,creator,link и по записи на строку.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fsdevblog/study-market/internal/repository/repoargs"
	"github.com/sirupsen/logrus"
)

type Importer struct {
	l *logrus.Entry
}

func New(l *logrus.Logger) *Importer {
	return &Importer{
		l: l.WithField("component", "importer"),
	}
}

// ImportFile читает CSV файл и вставляет записи в каталог. Возвращает количество
// вставленных записей. Битые строки пропускаются с warning в лог, файл при этом
// дочитывается до конца.
func (i *Importer) ImportFile(ctx context.Context, path string, create CreateGuideFn) (int, error) {
	file, openErr := os.Open(path)
	if openErr != nil {
		return 0, fmt.Errorf("importing catalog: %s", openErr.Error())
	}
	defer file.Close() //nolint:errcheck

	return i.importReader(ctx, file, create)
}

type CreateGuideFn func(ctx context.Context, args repoargs.CreateGuide) error

func (i *Importer) importReader(ctx context.Context, r io.Reader, create CreateGuideFn) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, headerErr := reader.Read()
	if headerErr != nil {
		return 0, fmt.Errorf("importing catalog: reading header: %s", headerErr.Error())
	}
	columns, columnsErr := mapColumns(header)
	if columnsErr != nil {
		return 0, fmt.Errorf("importing catalog: %w", columnsErr)
	}

	var imported int
	for line := 2; ; line++ {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			i.l.WithError(readErr).Warnf("skipping malformed line %d", line)
			continue
		}

		args, parseErr := parseRecord(record, columns)
		if parseErr != nil {
			i.l.WithError(parseErr).Warnf("skipping malformed line %d", line)
			continue
		}

		if createErr := create(ctx, args); createErr != nil {
			return imported, fmt.Errorf("importing catalog: line %d: %w", line, createErr)
		}
		imported++
	}

	i.l.WithField("imported", imported).Info("catalog import finished")
	return imported, nil
}

type columnIndexes struct {
	subject int
	topic   int
	price   int
	creator int
	link    int
}

func mapColumns(header []string) (*columnIndexes, error) {
	indexes := columnIndexes{subject: -1, topic: -1, price: -1, creator: -1, link: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "subject":
			indexes.subject = i
		case "topic":
			indexes.topic = i
		case "price":
			indexes.price = i
		case "creator":
			indexes.creator = i
		case "link":
			indexes.link = i
		}
	}
	if indexes.subject < 0 || indexes.topic < 0 || indexes.price < 0 || indexes.creator < 0 || indexes.link < 0 {
		return nil, fmt.Errorf("header %v misses required columns", header)
	}
	return &indexes, nil
}

func parseRecord(record []string, columns *columnIndexes) (repoargs.CreateGuide, error) {
	maxIdx := max(columns.subject, columns.topic, columns.price, columns.creator, columns.link)
	if len(record) <= maxIdx {
		return repoargs.CreateGuide{}, fmt.Errorf("record has %d fields, want at least %d", len(record), maxIdx+1)
	}

	price, priceErr := strconv.ParseInt(strings.TrimSpace(record[columns.price]), 10, 64)
	if priceErr != nil {
		return repoargs.CreateGuide{}, fmt.Errorf("parsing price: %s", priceErr.Error())
	}
	if price < 0 {
		return repoargs.CreateGuide{}, fmt.Errorf("negative price %d", price)
	}

	return repoargs.CreateGuide{
		Subject: strings.TrimSpace(record[columns.subject]),
		Topic:   strings.TrimSpace(record[columns.topic]),
		Price:   price,
		Creator: strings.TrimSpace(record[columns.creator]),
		Link:    strings.TrimSpace(record[columns.link]),
	}, nil
}
