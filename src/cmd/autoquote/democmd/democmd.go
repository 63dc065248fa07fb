package democmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"autoquote/src/internal/gbt"
	"autoquote/src/internal/schema"
)

// New returns the demo command, which renders a few directly constructed
// entries (the manual-entry path, bypassing the parser entirely).
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Render built-in example entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, e := range demoEntries() {
				if err := e.Validate(); err != nil {
					return err
				}
				formatted, err := gbt.Format(e)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s\n", i+1, formatted); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func demoEntries() []schema.Entry {
	return []schema.Entry{
		schema.JournalArticle{
			Header: schema.Header{
				Title: "深度学习在医学图像分析中的应用",
				Authors: []schema.Author{
					{Last: "张", First: "三"},
					{Last: "李", First: "四"},
					{Last: "Wang", First: "Li"},
					{Last: "赵", First: "六"},
				},
				Year: 2024,
			},
			Journal: "计算机科学",
			Volume:  "50",
			Issue:   "2",
			Pages:   "12-20",
			DOI:     "10.1234/abc.2024.001",
		},
		schema.Book{
			Header: schema.Header{
				Title:   "Python 编程实践",
				Authors: []schema.Author{{Last: "刘", First: "伟"}},
				Year:    2023,
			},
			Publisher: "机械工业出版社",
			Place:     "北京",
			Edition:   "2",
		},
		schema.WebResource{
			Header: schema.Header{
				Title:   "GB/T 7714-2015 标准简介",
				Authors: []schema.Author{{Last: "国家标准化管理委员会", IsOrganization: true}},
			},
			URL:           "https://www.example.com/gbt7714",
			DatePublished: time.Date(2015, 12, 1, 0, 0, 0, 0, time.UTC),
			DateAccessed:  time.Now().UTC(),
		},
	}
}
