package i18n

import (
	"sync"
	"testing"
	"testing/fstest"
)

// testLocales monta um fs.FS com arquivos de locale para testes
func testLocales(t *testing.T) fstest.MapFS {
	t.Helper()

	return fstest.MapFS{
		"en.json": &fstest.MapFile{Data: []byte(`{
  "welcome": "Welcome, {{.Name}}!",
  "record_created": "Vinyl record created successfully",
  "error.record_not_found": "Vinyl record not found"
}`)},
		"pt-BR.json": &fstest.MapFile{Data: []byte(`{
  "welcome": "Bem-vindo, {{.Name}}!",
  "record_created": "Disco criado com sucesso",
  "error.record_not_found": "Disco não encontrado"
}`)},
		"es.json": &fstest.MapFile{Data: []byte(`{
  "welcome": "¡Bienvenido, {{.Name}}!",
  "record_created": "Disco creado exitosamente",
  "error.record_not_found": "Disco no encontrado"
}`)},
	}
}

func TestNewService(t *testing.T) {
	t.Run("carrega traduções com sucesso", func(t *testing.T) {
		service, err := NewService(testLocales(t), "en")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if service.GetDefaultLanguage() != "en" {
			t.Errorf("esperava idioma padrão 'en', obteve '%s'", service.GetDefaultLanguage())
		}

		supportedLangs := service.GetSupportedLanguages()
		if len(supportedLangs) != 3 {
			t.Errorf("esperava 3 idiomas suportados, obteve %d", len(supportedLangs))
		}
	})

	t.Run("erro quando não há arquivos de locale", func(t *testing.T) {
		_, err := NewService(fstest.MapFS{}, "en")
		if err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando idioma padrão não existe", func(t *testing.T) {
		_, err := NewService(testLocales(t), "fr")
		if err == nil {
			t.Error("esperava erro para idioma padrão inexistente, obteve sucesso")
		}
	})
}

func TestNewDefault(t *testing.T) {
	t.Run("carrega os locales embutidos", func(t *testing.T) {
		service, err := NewDefault()
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if service.GetDefaultLanguage() != "en" {
			t.Errorf("esperava idioma padrão 'en', obteve '%s'", service.GetDefaultLanguage())
		}

		if !service.IsLanguageSupported("pt-BR") {
			t.Error("esperava suporte a pt-BR nos locales embutidos")
		}
	})
}

func TestService_T(t *testing.T) {
	service, err := NewService(testLocales(t), "en")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	t.Run("traduz mensagem simples em inglês", func(t *testing.T) {
		result := service.T("en", "record_created")
		expected := "Vinyl record created successfully"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("traduz mensagem simples em português", func(t *testing.T) {
		result := service.T("pt-BR", "record_created")
		expected := "Disco criado com sucesso"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("traduz mensagem com parâmetros", func(t *testing.T) {
		result := service.T("en", "welcome", map[string]interface{}{"Name": "John"})
		expected := "Welcome, John!"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("idioma não suportado cai no idioma padrão", func(t *testing.T) {
		result := service.T("fr", "record_created")
		expected := "Vinyl record created successfully"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("chave inexistente retorna a própria chave", func(t *testing.T) {
		result := service.T("en", "missing.key")
		if result != "missing.key" {
			t.Errorf("esperava 'missing.key', obteve '%s'", result)
		}
	})
}

func TestService_ConcurrentAccess(t *testing.T) {
	service, err := NewService(testLocales(t), "en")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = service.T("pt-BR", "record_created")
			_ = service.IsLanguageSupported("es")
		}()
	}
	wg.Wait()
}
