package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"carril-bici/internal/config"
	apperrors "carril-bici/internal/pkg/errors"
	"carril-bici/internal/ui"
	"carril-bici/internal/util"
)

// 报告输出格式
const (
	formatPlain    = "plain"
	formatStyled   = "styled"
	formatMarkdown = "markdown"
)

var (
	reportFormat string
	reportAdds   []string
	reportSets   []string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Genera el informe de tramos",
	Long: `Genera el informe de todos los tramos con su longitud y estado.

--add y --set se aplican, en ese orden, antes de generar el informe:
  carril-bici report --add "Vía Verde=2.0" --set "Vía Verde=Cerrado por obras"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyChanges(reportAdds, reportSets); err != nil {
			return err
		}

		display := config.GetConfig().Display
		out := cmd.OutOrStdout()

		switch reportFormat {
		case formatPlain:
			fmt.Fprint(out, registry.Report())
		case formatStyled:
			fmt.Fprint(out, ui.RenderStyled(registry, display.Units))
		case formatMarkdown:
			rendered, err := ui.RenderMarkdown(registry, display.Units, display.Style)
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
		default:
			return apperrors.NewErrorWithDetails(apperrors.ErrCodeInvalidParam, "Formato de informe no válido", reportFormat)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", formatPlain, "formato: plain, styled, markdown")
	reportCmd.Flags().StringArrayVar(&reportAdds, "add", nil, "añade un tramo, nombre=km (repetible)")
	reportCmd.Flags().StringArrayVar(&reportSets, "set", nil, "cambia el estado de un tramo, nombre=estado (repetible)")
}

// applyChanges 依次执行 --add 与 --set
func applyChanges(adds, sets []string) error {
	for _, spec := range adds {
		// 名称中可能包含 '='，长度取最后一个 '=' 之后的部分
		i := strings.LastIndex(spec, "=")
		if i < 0 {
			return apperrors.NewErrorWithDetails(apperrors.ErrCodeInvalidParam, "Se esperaba nombre=km", spec)
		}
		name, raw := spec[:i], strings.TrimSpace(spec[i+1:])
		lengthKm, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return apperrors.WrapError(apperrors.ErrCodeInvalidParam, "Longitud no numérica", err)
		}
		if err := registry.Add(name, lengthKm); err != nil {
			return err
		}
		util.Debugw("tramo añadido", map[string]interface{}{"name": name, "length_km": lengthKm})
	}

	for _, spec := range sets {
		name, status, ok := strings.Cut(spec, "=")
		if !ok {
			return apperrors.NewErrorWithDetails(apperrors.ErrCodeInvalidParam, "Se esperaba nombre=estado", spec)
		}
		if err := registry.UpdateStatus(name, status); err != nil {
			return err
		}
		util.Debugw("estado actualizado", map[string]interface{}{"name": name, "status": status})
	}
	return nil
}
