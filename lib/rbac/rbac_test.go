package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hdgomez8/portal-uci-back-sub001/models"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/requests/vacation/{id}/approve [post]")
		require.Nil(t, err)
		require.Equal(t, POST, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/requests/vacation/123-321/approve"
		isMatch := r1.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri := "/api/v1/requests/vacation/approve"
		isMatch = r1.MatchString(invalidUri)
		require.Equal(t, false, isMatch)

		path, method, err = parseSwaggerPattern("/api/v1/roles/{id}/permissions/{permissionId} [delete]")
		require.Nil(t, err)
		require.Equal(t, DELETE, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/roles/123-321/permissions/qwe-ewr123-wr-12"
		isMatch = r2.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri = "/api/v1/roles/we-ewr123-wr-12/permissions"
		isMatch = r2.MatchString(invalidUri)
		require.Equal(t, false, isMatch)
	})

	t.Run(`rule lookup check`, func(t *testing.T) {
		NewHandler()

		handler, found := Instance.GetRuleFunc("POST", "/api/v1/requests/vacation/abc-123/approve")
		require.True(t, found)
		require.True(t, handler("user-1", models.RoleJefeArea, "/api/v1/requests/vacation/abc-123/approve"))
		require.False(t, handler("user-1", models.RoleEmpleado, "/api/v1/requests/vacation/abc-123/approve"))

		handler, found = Instance.GetRuleFunc("POST", "/api/v1/requests/shift_change/abc-123/visto_bueno")
		require.True(t, found)
		require.True(t, handler("user-1", models.RoleEmpleado, "/api/v1/requests/shift_change/abc-123/visto_bueno"))

		handler, found = Instance.GetRuleFunc("POST", "/api/v1/roles")
		require.True(t, found)
		require.False(t, handler("user-1", models.RoleRRHH, "/api/v1/roles"))
		require.True(t, handler("user-1", models.RoleAdmin, "/api/v1/roles"))
	})

	t.Run(`permissions by role`, func(t *testing.T) {
		NewHandler()

		permissions := Instance.GetPermissions(models.RoleEmpleado)
		require.Contains(t, permissions[models.RequestsModule], models.CreatePermission)
		require.NotContains(t, permissions[models.RequestsModule], models.EditPermission)
		require.Empty(t, permissions[models.RolesModule])
	})
}
