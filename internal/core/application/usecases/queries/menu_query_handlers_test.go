package queries_test

import (
	"testing"

	"cafe/internal/core/application/usecases/queries"
	"cafe/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func (s *QueryHandlersTestSuite) TestListMenuItems_IDAscending() {
	handler := queries.NewListMenuItemsQueryHandler(s.broker)

	items, err := handler.Handle(s.T().Context(), queries.NewListMenuItemsQuery())
	s.Require().NoError(err)
	s.Require().Len(items, 13)
	s.Equal(queries.MenuItemResponse{ID: 1, Name: "Black (Hot)"}, items[0])
	s.Equal(queries.MenuItemResponse{ID: 13, Name: "Strawberry Cookies"}, items[12])
}

func (s *QueryHandlersTestSuite) TestListMenuItems_AfterRemoval() {
	s.removeMenuItem(1)

	items, err := queries.NewListMenuItemsQueryHandler(s.broker).Handle(s.T().Context(), queries.NewListMenuItemsQuery())
	s.Require().NoError(err)
	s.Require().Len(items, 12)
	s.Equal(int64(2), items[0].ID)
}

func (s *QueryHandlersTestSuite) TestGetMenuItem() {
	handler := queries.NewGetMenuItemQueryHandler(s.broker)

	query, err := queries.NewGetMenuItemQuery(13)
	s.Require().NoError(err)
	item, err := handler.Handle(s.T().Context(), query)
	s.Require().NoError(err)
	s.Equal("Strawberry Cookies", item.Name)

	query, err = queries.NewGetMenuItemQuery(99)
	s.Require().NoError(err)
	_, err = handler.Handle(s.T().Context(), query)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestMenuQueries_NotConstructed(t *testing.T) {
	_, err := queries.ListMenuItemsQueryHandler{}.Handle(t.Context(), queries.ListMenuItemsQuery{})
	require.ErrorIs(t, err, queries.ErrListMenuItemsQueryIsNotConstructed)

	_, err = queries.GetMenuItemQueryHandler{}.Handle(t.Context(), queries.GetMenuItemQuery{})
	require.ErrorIs(t, err, queries.ErrGetMenuItemQueryIsNotConstructed)

	_, err = queries.NewGetMenuItemQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
