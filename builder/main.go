package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// component é um binário compilado pelo builder.
type component struct {
	name    string
	dir     string
	output  string
	ldflags string
}

func main() {
	test := flag.Bool("test", false, "Rodar go test ./... antes de compilar")
	wait := flag.Bool("wait", runtime.GOOS == "windows", "Esperar Enter antes de sair")
	flag.Parse()

	fmt.Println(ColorCyan + "╔══════════════════════════════════════╗" + ColorReset)
	fmt.Println(ColorCyan + "║      VoxelVision Native Builder      ║" + ColorReset)
	fmt.Println(ColorCyan + "╚══════════════════════════════════════╝" + ColorReset)

	start := time.Now()

	setupEnvironment()

	if *test {
		if err := run("TESTES", "go", "test", "./..."); err != nil {
			fatal(err, *wait)
		}
	}

	for _, c := range components() {
		if err := buildComponent(c); err != nil {
			fatal(err, *wait)
		}
	}

	fmt.Printf("\n"+ColorCyan+"Build finalizada com sucesso em %v!"+ColorReset+"\n", time.Since(start).Round(time.Second))
	fmt.Println(ColorYellow + "Dica: Execute 'gerador' para um relatório do mundo sem abrir janela." + ColorReset)

	if *wait {
		fmt.Println("\nPressione Enter para sair...")
		fmt.Scanln()
	}
}

// components lista os binários na ordem de compilação.
func components() []component {
	exe := ""
	gui := ""
	if runtime.GOOS == "windows" {
		exe = ".exe"
		gui = " -H=windowsgui"
	}
	return []component{
		{name: "CLIENTE (CGO + GUI)", dir: "cliente", output: filepath.Join("bin", "voxelvision"+exe), ldflags: "-s -w" + gui},
		{name: "GERADOR (CGO, sem janela)", dir: filepath.Join("cliente", "gerador"), output: filepath.Join("bin", "gerador"+exe), ldflags: "-s -w"},
	}
}

func setupEnvironment() {
	fmt.Println(ColorYellow + "\n[0] Configurando ambiente de compilação..." + ColorReset)

	// raylib exige CGO em todas as plataformas
	os.Setenv("CGO_ENABLED", "1")

	// Adicionar MSYS2 ao PATH se estiver no Windows
	if runtime.GOOS == "windows" {
		msysPath := `C:\msys64\mingw64\bin`
		currentPath := os.Getenv("PATH")
		if !strings.Contains(currentPath, msysPath) {
			os.Setenv("PATH", msysPath+";"+currentPath)
			fmt.Printf("  - PATH atualizado: %s adicionado.\n", msysPath)
		}
		os.Setenv("CC", "gcc")
		fmt.Println("  - Compilador C: gcc (MSYS2)")
	}
}

func buildComponent(c component) error {
	return run(c.name, "go", "build", "-ldflags", c.ldflags, "-o", c.output, "./"+filepath.ToSlash(c.dir))
}

func run(name string, command string, args ...string) error {
	fmt.Printf(ColorYellow+"\n[+] %s: %s %s"+ColorReset+"\n", name, command, strings.Join(args, " "))

	cmd := exec.Command(command, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("falha em %s: %w", name, err)
	}

	fmt.Printf(ColorGreen+"  - %s concluído"+ColorReset+"\n", name)
	return nil
}

func fatal(err error, wait bool) {
	fmt.Printf("\n"+ColorRed+"[ERRO FATAL] %v"+ColorReset+"\n", err)
	if wait {
		fmt.Println("Pressione Enter para sair...")
		fmt.Scanln()
	}
	os.Exit(1)
}
