package nav

import "testing"

func TestDecideRedirectsProtectedPagesWhenSignedOut(t *testing.T) {
	anon := Session{Authenticated: false, Loading: false}
	for page := range protectedPages {
		gotPage, gotAux := Decide(page, "SHP-42", anon, false)
		if gotPage != PageLogin {
			t.Fatalf("%s: expected login redirect, got %s", page, gotPage)
		}
		if gotAux != "" {
			t.Fatalf("%s: auxiliary id should be cleared, got %q", page, gotAux)
		}
	}
}

func TestDecideBypassReturnsRequestUnchanged(t *testing.T) {
	anon := Session{Authenticated: false, Loading: false}
	for page := range pageNames {
		gotPage, gotAux := Decide(page, "aux-1", anon, true)
		if gotPage != page || gotAux != "aux-1" {
			t.Fatalf("%s: bypass must be unconditional, got (%s, %q)", page, gotPage, gotAux)
		}
	}
}

func TestDecideAllowsAuthenticatedSessions(t *testing.T) {
	authed := Session{Authenticated: true}
	gotPage, gotAux := Decide(PageShipmentDetails, "SHP-42", authed, false)
	if gotPage != PageShipmentDetails || gotAux != "SHP-42" {
		t.Fatalf("expected pass-through, got (%s, %q)", gotPage, gotAux)
	}
}

func TestDecideMakesNoDecisionWhileLoading(t *testing.T) {
	loading := Session{Authenticated: false, Loading: true}
	gotPage, gotAux := Decide(PageMarketplace, "p-9", loading, false)
	if gotPage != PageMarketplace || gotAux != "p-9" {
		t.Fatalf("loading session must not trigger redirects, got (%s, %q)", gotPage, gotAux)
	}
}

func TestDecideLeavesPublicPagesAlone(t *testing.T) {
	anon := Session{}
	for _, page := range []Page{PageLogin, PageRegister, PageForgotPassword, PageProductDetail} {
		gotPage, _ := Decide(page, "", anon, false)
		if gotPage != page {
			t.Fatalf("%s should be reachable signed out, got %s", page, gotPage)
		}
	}
}

func TestProtectedSetMembership(t *testing.T) {
	if Protected(PageLogin) || Protected(PageRegister) || Protected(PageForgotPassword) {
		t.Fatalf("auth pages must not be protected")
	}
	if !Protected(PageCart) || !Protected(PageShipmentHistory) {
		t.Fatalf("cart and shipment history must be protected")
	}
	if Protected(PageProductDetail) {
		t.Fatalf("product-detail is outside the protected set")
	}
}
