// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/taibuivan/yomira-reader/internal/catalog"
)

func newRequestCmd() *cobra.Command {
	var request catalog.Request

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Request a title that is missing from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := catalog.NewStore(app.api, app.notifier, app.logger, app.cfg.PageSize)
			view := catalog.NewView(store, app.notifier)
			defer view.Close()

			if !view.SubmitRequest(cmd.Context(), request) {
				return errors.New("request not submitted")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&request.Title, "title", "", "Title to request")
	cmd.Flags().StringVar(&request.Email, "email", "", "Contact email")
	cmd.Flags().StringVar(&request.Variant, "variant", "", "manga, manhwa, manhua, anime or novel")
	return cmd
}
