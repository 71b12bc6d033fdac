package planilha

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Planilha embrulha um workbook xlsx usado pelos fluxos de RPA:
// uma aba de entrada com identificadores e uma aba de resultados
// ("Dados") que também serve de registro do que já foi consultado.
type Planilha struct {
	f    *excelize.File
	path string
}

// Abrir carrega o arquivo, ou começa um workbook novo se não existir.
func Abrir(path string) (*Planilha, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("abrir %s: %w", path, err)
		}
		f = excelize.NewFile()
	}
	return &Planilha{f: f, path: path}, nil
}

func (p *Planilha) Close() error {
	return p.f.Close()
}

// LerColuna devolve os valores da primeira coluna da aba, ignorando o
// cabeçalho (linha 1) e células vazias.
func (p *Planilha) LerColuna(sheet string) ([]string, error) {
	rows, err := p.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("ler aba %s: %w", sheet, err)
	}
	var out []string
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		v := strings.TrimSpace(row[0])
		if v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

// ChavesSalvas coleta a primeira coluna da aba de resultados num set,
// para pular identificadores já consultados em execuções anteriores.
// Aba inexistente = nada salvo ainda.
func (p *Planilha) ChavesSalvas(sheet string) (map[string]struct{}, error) {
	saved := make(map[string]struct{})
	idx, err := p.f.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	}
	if idx == -1 {
		return saved, nil
	}
	rows, err := p.f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		if v := strings.TrimSpace(row[0]); v != "" {
			saved[v] = struct{}{}
		}
	}
	return saved, nil
}

// AppendLinha acrescenta uma linha no fim da aba, criando a aba com o
// cabeçalho em negrito quando ela ainda não existe.
func (p *Planilha) AppendLinha(sheet string, header, valores []string) error {
	idx, err := p.f.GetSheetIndex(sheet)
	if err != nil {
		return err
	}
	if idx == -1 {
		if _, err := p.f.NewSheet(sheet); err != nil {
			return err
		}
		hdr := make([]interface{}, len(header))
		for i, h := range header {
			hdr[i] = h
		}
		if err := p.f.SetSheetRow(sheet, "A1", &hdr); err != nil {
			return err
		}
		style, err := p.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(len(header), 1)
		if err != nil {
			return err
		}
		if err := p.f.SetCellStyle(sheet, "A1", last, style); err != nil {
			return err
		}
	}

	rows, err := p.f.GetRows(sheet)
	if err != nil {
		return err
	}
	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	vals := make([]interface{}, len(valores))
	for i, v := range valores {
		vals[i] = v
	}
	return p.f.SetSheetRow(sheet, cell, &vals)
}

// LerTabela devolve o cabeçalho (linha 1) e as demais linhas da aba,
// descartando linhas totalmente vazias.
func (p *Planilha) LerTabela(sheet string) ([]string, [][]string, error) {
	rows, err := p.f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("ler aba %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	var data [][]string
	for _, row := range rows[1:] {
		empty := true
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				empty = false
				break
			}
		}
		if !empty {
			data = append(data, row)
		}
	}
	return rows[0], data, nil
}

// Salvar grava o workbook no caminho informado em Abrir.
func (p *Planilha) Salvar() error {
	return p.f.SaveAs(p.path)
}
