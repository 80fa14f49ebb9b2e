package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exdraw-go/pkg/exdraw"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/anchor"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/chart"
	"github.com/ukaji3/exdraw-go/pkg/exdraw/drawing"
	"go.uber.org/zap"
)

func sampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sample [output.xlsx]",
		Short: "Write a workbook with one of each drawing object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			if err := writeSample(args[0], logger); err != nil {
				return fmt.Errorf("sample failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
}

func samplePicture() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cells(col1, row1, col2, row2 int) *anchor.ClientAnchor {
	return anchor.NewClientAnchor(0, 0, 0, 0, col1, row1, col2, row2)
}

func writeSample(path string, logger *zap.Logger) error {
	wb, err := exdraw.NewWorkbook(exdraw.Options{Logger: logger})
	if err != nil {
		return err
	}
	pic, err := samplePicture()
	if err != nil {
		return err
	}
	index, err := wb.AddPicture(pic, "png")
	if err != nil {
		return err
	}

	d, err := wb.Sheets()[0].Drawing(true)
	if err != nil {
		return err
	}

	start, err := d.CreateSimpleShape(cells(1, 1, 3, 3))
	if err != nil {
		return err
	}
	start.SetText("Start")
	end, err := d.CreateTextbox(cells(6, 1, 9, 3))
	if err != nil {
		return err
	}
	end.SetText("End")
	if err := end.SetShapeType("flowChartTerminator"); err != nil {
		return err
	}

	line, err := d.CreateConnector(cells(3, 2, 6, 2))
	if err != nil {
		return err
	}
	if err := line.Connect(start, end); err != nil {
		return err
	}
	if err := line.SetArrowHeads(drawing.ArrowNone, drawing.ArrowTriangle); err != nil {
		return err
	}

	group, err := d.CreateGroup(cells(1, 5, 5, 9))
	if err != nil {
		return err
	}
	member := group.CreateTextbox(anchor.ChildAnchor{CX: 100 * anchor.EMUPerPixel, CY: 40 * anchor.EMUPerPixel})
	member.SetText("Grouped")

	if _, err := d.CreatePicture(cells(6, 5, 8, 9), index); err != nil {
		return err
	}

	c, err := d.CreateChart(cells(1, 11, 9, 26))
	if err != nil {
		return err
	}
	c.SetTitle("Sample")
	cat := c.PlotArea().AddCategoryAxis(chart.PositionBottom)
	val := c.PlotArea().AddValueAxis(chart.PositionLeft)
	cat.CrossAxis(val.Axis)
	val.CrossAxis(cat.Axis)
	val.SetNumberFormat("0.0%")
	val.GetOrAddMajorGridProperties().SetNoLine()

	note, err := d.CreateCellComment(cells(0, 0, 2, 3))
	if err != nil {
		return err
	}
	note.SetAuthor("exdraw")
	note.SetText("Generated by exdraw sample")

	return wb.Save(path)
}
